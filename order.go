package num

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// CompareU128 returns -1, 0 or +1 depending on whether a is less than, equal
// to or greater than b. It is suitable for slices.SortFunc and
// slices.BinarySearchFunc.
func CompareU128(a, b U128) int { return a.Cmp(b) }

func EqualU128(a, b U128) bool { return a == b }

// Hash returns a 64-bit hash of u. The two words are folded together with
// xor and then mixed with xxhash, so equal values always hash equally. It
// is not resistant to adversarial inputs.
func (u U128) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u.hi^u.lo)
	return xxhash.Sum64(buf[:])
}

func HashU128(u U128) uint64 { return u.Hash() }
