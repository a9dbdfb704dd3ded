package num

import "encoding/binary"

// U128FromBytesBE decodes the first 16 bytes of b as a big-endian U128: the
// high word is stored in b[0:8], most significant byte first, followed by the
// low word. It panics if len(b) < 16.
func U128FromBytesBE(b []byte) U128 {
	_ = b[15] // bounds check hint to compiler; see golang.org/issue/14808
	return U128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// U128FromBytesLE decodes the first 16 bytes of b as a little-endian U128:
// the low word is stored in b[0:8], least significant byte first, followed by
// the high word. It panics if len(b) < 16.
func U128FromBytesLE(b []byte) U128 {
	_ = b[15] // bounds check hint to compiler; see golang.org/issue/14808
	return U128{
		lo: binary.LittleEndian.Uint64(b[:8]),
		hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// PutBytesBE stores u in the first 16 bytes of b in big-endian order. It
// panics if len(b) < 16.
func (u U128) PutBytesBE(b []byte) {
	_ = b[15]
	binary.BigEndian.PutUint64(b[:8], u.hi)
	binary.BigEndian.PutUint64(b[8:16], u.lo)
}

// PutBytesLE stores u in the first 16 bytes of b in little-endian order. It
// panics if len(b) < 16.
func (u U128) PutBytesLE(b []byte) {
	_ = b[15]
	binary.LittleEndian.PutUint64(b[:8], u.lo)
	binary.LittleEndian.PutUint64(b[8:16], u.hi)
}

func (u U128) BytesBE() (out [16]byte) {
	u.PutBytesBE(out[:])
	return out
}

func (u U128) BytesLE() (out [16]byte) {
	u.PutBytesLE(out[:])
	return out
}

func (u U128) AppendBytesBE(dst []byte) []byte {
	b := u.BytesBE()
	return append(dst, b[:]...)
}

func (u U128) AppendBytesLE(dst []byte) []byte {
	b := u.BytesLE()
	return append(dst, b[:]...)
}
