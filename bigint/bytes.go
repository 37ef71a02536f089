package bigint

import "encoding/binary"

// Byte returns byte i (0 = least significant byte) of the 40-byte
// limb storage.
func (a *Int) Byte(i int) byte {
	limb := i / 8
	shift := uint(i%8) * 8
	return byte(a.n[limb] >> shift)
}

// SetByte sets byte i (0 = least significant byte) to v.
func (a *Int) SetByte(i int, v byte) {
	limb := i / 8
	shift := uint(i%8) * 8
	mask := uint64(0xFF) << shift
	a.n[limb] = (a.n[limb] &^ mask) | (uint64(v) << shift)
}

// MaskByte zeroes out byte i, useful when truncating a value to a
// known width.
func (a *Int) MaskByte(i int) {
	a.SetByte(i, 0)
}

// SetBytes32 sets a from a 32-byte big-endian unsigned encoding.
// Panics if b is not exactly 32 bytes.
func (a *Int) SetBytes32(b []byte) {
	if len(b) != 32 {
		panic("bigint: SetBytes32 requires exactly 32 bytes")
	}
	a.n[4] = 0
	a.n[3] = binary.BigEndian.Uint64(b[0:8])
	a.n[2] = binary.BigEndian.Uint64(b[8:16])
	a.n[1] = binary.BigEndian.Uint64(b[16:24])
	a.n[0] = binary.BigEndian.Uint64(b[24:32])
}

// SetBytes sets a from an arbitrary-length big-endian unsigned byte
// slice, which must fit in 256 bits.
func (a *Int) SetBytes(b []byte) {
	var buf [32]byte
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(buf[32-len(b):], b)
	a.SetBytes32(buf[:])
}

// Bytes32 returns the low 256 bits of a as a 32-byte big-endian
// unsigned encoding.
func (a *Int) Bytes32() [32]byte {
	var out [32]byte
	binary.BigEndian.PutUint64(out[0:8], a.n[3])
	binary.BigEndian.PutUint64(out[8:16], a.n[2])
	binary.BigEndian.PutUint64(out[16:24], a.n[1])
	binary.BigEndian.PutUint64(out[24:32], a.n[0])
	return out
}

// Bytes returns Bytes32 as a slice.
func (a *Int) Bytes() []byte {
	b := a.Bytes32()
	return b[:]
}
