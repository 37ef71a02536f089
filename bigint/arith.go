package bigint

import "math/bits"

// Add adds b into a in place and returns the outgoing carry.
func (a *Int) Add(b *Int) uint64 {
	var c uint64
	for i := 0; i < Limbs; i++ {
		a.n[i], c = bits.Add64(a.n[i], b.n[i], c)
	}
	return c
}

// Add2 sets a = x + y without reading a's previous value, and returns
// the outgoing carry.
func (a *Int) Add2(x, y *Int) uint64 {
	var c uint64
	for i := 0; i < Limbs; i++ {
		a.n[i], c = bits.Add64(x.n[i], y.n[i], c)
	}
	return c
}

// AddUint64 adds the small unsigned value v into a in place and
// returns the outgoing carry.
func (a *Int) AddUint64(v uint64) uint64 {
	var c uint64
	a.n[0], c = bits.Add64(a.n[0], v, 0)
	for i := 1; i < Limbs && c != 0; i++ {
		a.n[i], c = bits.Add64(a.n[i], 0, c)
	}
	return c
}

// Sub subtracts b from a in place and returns the outgoing borrow.
func (a *Int) Sub(b *Int) uint64 {
	var c uint64
	for i := 0; i < Limbs; i++ {
		a.n[i], c = bits.Sub64(a.n[i], b.n[i], c)
	}
	return c
}

// Sub2 sets a = x - y without reading a's previous value, and returns
// the outgoing borrow.
func (a *Int) Sub2(x, y *Int) uint64 {
	var c uint64
	for i := 0; i < Limbs; i++ {
		a.n[i], c = bits.Sub64(x.n[i], y.n[i], c)
	}
	return c
}

// Neg negates a in place (two's complement).
func (a *Int) Neg() {
	for i := range a.n {
		a.n[i] = ^a.n[i]
	}
	a.AddUint64(1)
}

// Abs makes a non-negative in place, interpreting it as signed.
func (a *Int) Abs() {
	if a.IsNegative() {
		a.Neg()
	}
}

// MulSingle multiplies a by the scalar m and returns the low 320 bits
// of the product along with the 64-bit word that overflowed past bit
// 319.
func (a *Int) MulSingle(m uint64) (result Int, high uint64) {
	var carry uint64
	for i := 0; i < Limbs; i++ {
		hi, lo := bits.Mul64(a.n[i], m)
		lo2, c := bits.Add64(lo, carry, 0)
		result.n[i] = lo2
		carry = hi + c
	}
	high = carry
	return
}

// Mul512 computes the full 5x5->10 limb schoolbook product of a and
// b. The double-width result is left to the caller (the field layer)
// to reduce; Int itself only ever stores five limbs.
func Mul512(a, b *Int) [2 * Limbs]uint64 {
	var r [2 * Limbs]uint64
	for i := 0; i < Limbs; i++ {
		if a.n[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < Limbs; j++ {
			hi, lo := bits.Mul64(a.n[i], b.n[j])
			var c1, c2 uint64
			lo, c1 = bits.Add64(lo, r[i+j], 0)
			lo, c2 = bits.Add64(lo, carry, 0)
			r[i+j] = lo
			carry = hi + c1 + c2
		}
		k := i + Limbs
		for carry != 0 {
			r[k], carry = bits.Add64(r[k], carry, 0)
			k++
		}
	}
	return r
}

// Mul sets a = a*b truncated to the low 320 bits. This is the plain
// (non-modular) multiply used for small-scalar work; modular code
// goes through the field package instead so it can reduce the full
// double-width product properly.
func (a *Int) Mul(b *Int) {
	full := Mul512(a, b)
	copy(a.n[:], full[:Limbs])
}
