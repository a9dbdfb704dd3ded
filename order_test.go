package num

import (
	"slices"
	"sort"
	"sync"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"golang.org/x/sync/errgroup"
)

func TestCompareU128Sort(t *testing.T) {
	tt := assert.WrapTB(t)

	values := make([]U128, 1000)
	for i := range values {
		values[i] = randomU128(globalRNG)
	}
	values = append(values, MaxU128, zeroU128, u64(1), U128{hi: 1})

	slices.SortFunc(values, CompareU128)
	tt.MustAssert(sort.SliceIsSorted(values, func(i, j int) bool {
		return values[i].AsBigInt().Cmp(values[j].AsBigInt()) < 0
	}))
	tt.MustEqual(zeroU128, values[0])
	tt.MustEqual(MaxU128, values[len(values)-1])

	idx, found := slices.BinarySearchFunc(values, U128{hi: 1}, CompareU128)
	tt.MustAssert(found)
	tt.MustEqual(U128{hi: 1}, values[idx])
}

func TestEqualU128(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 1000; i++ {
		a, b := randomU128(globalRNG), randomU128(globalRNG)
		tt.MustEqual(a.Cmp(b) == 0, EqualU128(a, b))
		tt.MustAssert(EqualU128(a, a))
	}
}

func TestU128Hash(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 1000; i++ {
		u := randomU128(globalRNG)
		v := U128FromRaw(u.Raw())
		tt.MustEqual(u.Hash(), v.Hash())
		tt.MustEqual(u.Hash(), HashU128(v))
	}

	// Small values should not all land in the same place:
	seen := make(map[uint64]struct{})
	for i := uint64(0); i < 1000; i++ {
		seen[u64(i).Hash()] = struct{}{}
	}
	tt.MustEqual(1000, len(seen))

	// Swapping the words folds to the same input:
	tt.MustEqual(U128FromRaw(1, 2).Hash(), U128FromRaw(2, 1).Hash())
}

func TestU128AsMapKey(t *testing.T) {
	tt := assert.WrapTB(t)

	m := map[U128]int{}
	m[u64(1)] = 1
	m[U128{hi: 1}] = 2
	m[U128FromRaw(0, 1)]++

	tt.MustEqual(2, len(m))
	tt.MustEqual(2, m[u64(1)])
}

// Values are immutable, so sharing them between goroutines needs no locking.
func TestU128ConcurrentReads(t *testing.T) {
	tt := assert.WrapTB(t)

	shared := make([]U128, 256)
	for i := range shared {
		shared[i] = randomU128(globalRNG)
	}

	var (
		mu      sync.Mutex
		results = make(map[int]uint64)
		g       errgroup.Group
	)
	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			var sum uint64
			for _, u := range shared {
				q, _, _ := u.QuoRem64(7)
				sum ^= q.Hash() ^ u.Mul(u).Hash()
				if _, err := ParseU128(u.Text(36), 36); err != nil {
					return err
				}
			}
			mu.Lock()
			results[w] = sum
			mu.Unlock()
			return nil
		})
	}
	tt.MustOK(g.Wait())

	for w := 1; w < 8; w++ {
		tt.MustEqual(results[0], results[w])
	}
}
