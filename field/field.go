// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package field implements modular arithmetic over a configurable odd
// 256-bit modulus, built on top of package bigint. SetupField installs
// the generic Montgomery machinery (R, R², R³, R⁴, and the CIOS
// reduction constant); the secp256k1-specialized fast paths live
// alongside it in k1.go and order.go as free functions, since those
// are bound to one compile-time prime/order pair rather than an
// arbitrary Field value.
package field

import (
	"math/bits"

	"github.com/vaultkey/secp256k1/bigint"
)

// montgomeryLimbs is the number of limbs the Montgomery machinery
// operates over. secp256k1's field modulus and curve order both fit
// in 256 bits, i.e. four 64-bit limbs; the fifth limb bigint.Int
// carries as headroom is zero in every value this package returns
// (MontgomeryMult uses it only for its final carry, see below).
const montgomeryLimbs = 4

// Field holds an odd modulus and the Montgomery constants derived
// from it.
type Field struct {
	p  bigint.Int
	r  bigint.Int // R = 2^256 mod p
	r2 bigint.Int // R^2 mod p
	r3 bigint.Int // R^3 mod p
	r4 bigint.Int // R^4 mod p
	mu uint64      // -p^-1 mod 2^64, the CIOS reduction constant
}

// SetupField builds the Montgomery constants for modulus p, which
// must be odd. It panics if p is even, since Montgomery arithmetic is
// undefined for even moduli.
func SetupField(p *bigint.Int) *Field {
	if p.IsEven() {
		panic("field: modulus must be odd")
	}

	f := &Field{p: *p, mu: negateMod64(invModUint64(p.Limb(0)))}

	// R = 2^256 mod p, computed by repeated doubling rather than a
	// literal shift-and-reduce, so the value never leaves the
	// generic, already-tested Mod path. R², R³ and R⁴ are then plain
	// (non-Montgomery) products reduced the same way; MontgomeryMult
	// itself only needs p and mu, so there's no circular dependency
	// on these being ready first.
	r := bigint.One()
	for i := 0; i < montgomeryLimbs*64; i++ {
		r.Add(&r)
		if r.CmpUnsigned(&f.p) >= 0 {
			r.Sub(&f.p)
		}
	}
	f.r = r
	f.r2 = plainModMul(&f.r, &f.r, &f.p)
	f.r3 = plainModMul(&f.r2, &f.r, &f.p)
	f.r4 = plainModMul(&f.r3, &f.r, &f.p)
	return f
}

// plainModMul computes a*b mod m via the schoolbook double-width
// multiply and limb-by-limb shift-and-reduce (shiftReduceLimb), with
// no division and no Montgomery form involved;
// used only to bootstrap the Montgomery powers of R themselves.
func plainModMul(a, b, m *bigint.Int) bigint.Int {
	full := bigint.Mul512(a, b)
	var lo, hi bigint.Int
	for i := 0; i < bigint.Limbs; i++ {
		lo.SetLimb(i, full[i])
	}
	for i := 0; i < bigint.Limbs; i++ {
		if i+bigint.Limbs < len(full) {
			hi.SetLimb(i, full[i+bigint.Limbs])
		}
	}
	// Fold the high half back in repeatedly via long division against
	// m; Mod only operates on a single Int, so assemble the product
	// through repeated shift-and-add reduction instead of a 640-bit
	// division.
	result := bigint.Zero()
	for i := bigint.Limbs - 1; i >= 0; i-- {
		result = shiftReduceLimb(&result, hi.Limb(i), m)
	}
	for i := bigint.Limbs - 1; i >= 0; i-- {
		result = shiftReduceLimb(&result, lo.Limb(i), m)
	}
	return result
}

// shiftReduceLimb folds one more 64-bit limb of a big-endian digit
// stream into result: result = (result * 2^64 + limb) mod m. Used by
// plainModMul to reduce a double-width product limb by limb without
// needing a double-width division primitive.
func shiftReduceLimb(result *bigint.Int, limb uint64, m *bigint.Int) bigint.Int {
	r := *result
	for i := 0; i < 64; i++ {
		r.Add(&r)
		if r.CmpUnsigned(m) >= 0 {
			r.Sub(m)
		}
	}
	bit := bigint.FromUint64(limb)
	r.Add(&bit)
	if r.CmpUnsigned(m) >= 0 {
		r.Sub(m)
	}
	return r
}

// invModUint64 returns the inverse of the odd word p0 modulo 2^64 via
// Newton-Raphson: each iteration of x := x*(2-p0*x) doubles the number
// of correct low bits, starting from the 1-bit-correct seed x=1.
func invModUint64(p0 uint64) uint64 {
	x := uint64(1)
	for i := 0; i < 6; i++ {
		x = x * (2 - p0*x)
	}
	return x
}

// negateMod64 returns -v mod 2^64, i.e. its two's complement.
func negateMod64(v uint64) uint64 {
	return ^v + 1
}

// GetR, GetR2, GetR3, GetR4 expose the Montgomery powers of R, used by
// callers that batch their own Montgomery conversions.
func (f *Field) GetR() bigint.Int  { return f.r }
func (f *Field) GetR2() bigint.Int { return f.r2 }
func (f *Field) GetR3() bigint.Int { return f.r3 }
func (f *Field) GetR4() bigint.Int { return f.r4 }

// Modulus returns a copy of the field's modulus.
func (f *Field) Modulus() bigint.Int { return f.p }

// MontgomeryMult computes a*b*R^-1 mod p using CIOS (coarsely
// integrated operand scanning): for each limb of b, multiply-
// accumulate a*b_i into a 6-word running total, cancel the low limb
// against the modulus using mu, then shift one limb right. The result
// before the final conditional subtraction is bounded by 2p.
func (f *Field) MontgomeryMult(a, b *bigint.Int) bigint.Int {
	var t [montgomeryLimbs + 2]uint64

	for i := 0; i < montgomeryLimbs; i++ {
		carry := mulAccumulate(&t, a, b.Limb(i), montgomeryLimbs)

		lo, c := bits.Add64(t[montgomeryLimbs], carry, 0)
		t[montgomeryLimbs] = lo
		t[montgomeryLimbs+1] += c

		m := t[0] * f.mu
		carry = mulAccumulate(&t, &f.p, m, montgomeryLimbs)

		lo, c = bits.Add64(t[montgomeryLimbs], carry, 0)
		t[montgomeryLimbs] = lo
		t[montgomeryLimbs+1] += c

		for j := 0; j < montgomeryLimbs+1; j++ {
			t[j] = t[j+1]
		}
		t[montgomeryLimbs+1] = 0
	}

	// The CIOS running sum is bounded by 2p, so t[montgomeryLimbs] (the
	// word shifted in past the top tracked limb) is always 0 or 1; it
	// must be consulted, since the four limbs below only capture the
	// result mod 2^256 and dropping it would under-reduce by 2^256
	// whenever it's set. bigint.Int has exactly one limb of headroom
	// past montgomeryLimbs, so it holds that carry directly and the
	// final reduction becomes a plain 320-bit compare-and-subtract.
	var result bigint.Int
	for j := 0; j < montgomeryLimbs; j++ {
		result.SetLimb(j, t[j])
	}
	result.SetLimb(montgomeryLimbs, t[montgomeryLimbs])
	for result.CmpUnsigned(&f.p) >= 0 {
		result.Sub(&f.p)
	}
	return result
}

// mulAccumulate adds a*m into t (a montgomeryLimbs+2-word running
// total) in place and returns the carry out of word `limbs`.
func mulAccumulate(t *[montgomeryLimbs + 2]uint64, a *bigint.Int, m uint64, limbs int) uint64 {
	var carry uint64
	for j := 0; j < limbs; j++ {
		hi, lo := bits.Mul64(a.Limb(j), m)
		lo, c1 := bits.Add64(t[j], lo, 0)
		lo, c2 := bits.Add64(lo, carry, 0)
		t[j] = lo
		carry = hi + c1 + c2
	}
	return carry
}

// ModMul multiplies two plain (non-Montgomery-form) field elements:
// MontgomeryMult(a,b) yields a*b*R^-1, so multiplying that again by R²
// through MontgomeryMult recovers a*b.
func (f *Field) ModMul(a, b *bigint.Int) bigint.Int {
	t := f.MontgomeryMult(a, b)
	return f.MontgomeryMult(&t, &f.r2)
}

// ModSquare is ModMul(a, a).
func (f *Field) ModSquare(a *bigint.Int) bigint.Int {
	return f.ModMul(a, a)
}

// Mod reduces a into [0, p).
func (f *Field) Mod(a *bigint.Int) bigint.Int {
	r := *a
	r.Mod(&f.p)
	return r
}

// ModAdd adds a into the receiver in place, assuming both are already
// in [0, p), and conditionally subtracts p to stay reduced.
func (f *Field) ModAdd(dst, a *bigint.Int) {
	dst.Add(a)
	if dst.CmpUnsigned(&f.p) >= 0 {
		dst.Sub(&f.p)
	}
}

// ModAdd2 sets dst = a + b mod p without reading dst's prior value.
func (f *Field) ModAdd2(dst, a, b *bigint.Int) {
	*dst = *a
	f.ModAdd(dst, b)
}

// ModSub subtracts a from the receiver in place, assuming both are in
// [0, p), and conditionally adds p back if the subtraction borrowed.
func (f *Field) ModSub(dst, a *bigint.Int) {
	borrow := dst.Sub(a)
	if borrow != 0 {
		dst.Add(&f.p)
	}
}

// ModSub2 sets dst = a - b mod p without reading dst's prior value.
func (f *Field) ModSub2(dst, a, b *bigint.Int) {
	*dst = *a
	f.ModSub(dst, b)
}

// ModNeg returns p - a mod p (0 if a is 0).
func (f *Field) ModNeg(a *bigint.Int) bigint.Int {
	if a.IsZero() {
		return bigint.Zero()
	}
	r := f.p
	r.Sub(a)
	return r
}

// ModExp computes a^e mod p by left-to-right square-and-multiply over
// the bit length of e.
func (f *Field) ModExp(a, e *bigint.Int) bigint.Int {
	result := bigint.One()
	base := f.Mod(a)
	bitLen := e.GetBitLength()
	for i := bitLen - 1; i >= 0; i-- {
		result = f.ModSquare(&result)
		if e.GetBit(uint(i)) == 1 {
			result = f.ModMul(&result, &base)
		}
	}
	return result
}

// HasSqrt reports whether a has a square root mod p, via Euler's
// criterion a^((p-1)/2) == 1. Only meaningful for p ≡ 3 (mod 4), which
// is all this package's callers ever use it for.
func (f *Field) HasSqrt(a *bigint.Int) bool {
	one := bigint.One()
	var exp bigint.Int
	exp.Sub2(&f.p, &one)
	exp.RshUnsigned(1)
	r := f.ModExp(a, &exp)
	return r.IsOne()
}

// ModSqrt returns a^((p+1)/4) mod p, the square root formula valid
// when p ≡ 3 (mod 4) (true for the secp256k1 field prime). The sign
// of the result is unspecified; callers needing a particular parity
// must negate explicitly.
func (f *Field) ModSqrt(a *bigint.Int) bigint.Int {
	one := bigint.One()
	var exp bigint.Int
	exp.Add2(&f.p, &one)
	exp.RshUnsigned(2)
	return f.ModExp(a, &exp)
}

// ModInv returns the inverse of a modulo p, reusing the BigInt
// extended binary GCD against the field modulus.
func (f *Field) ModInv(a *bigint.Int) bigint.Int {
	return bigint.ModInverse(a, &f.p)
}
