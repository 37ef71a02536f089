// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bigint implements fixed-width 320-bit signed integer
// arithmetic on top of five 64-bit limbs.
//
// The extra, fifth limb over the 256 bits actually needed to hold a
// secp256k1 field element or scalar is intentional headroom:
// division, Montgomery multiplication and the modular inverse all
// produce one limb of overflow partway through and need somewhere to
// put it without reallocating.
package bigint

import (
	"math/bits"
)

// Limbs is the number of 64-bit words an Int is made of.
const Limbs = 5

// Bits is the total bit width of an Int, sign bit included.
const Bits = Limbs * 64

// Int is a fixed-width 320-bit integer stored as five 64-bit limbs,
// limb 0 least significant. The most significant bit of limb 4 is the
// sign bit for signed comparisons; unsigned users are expected to keep
// their values within the low 256 bits so that bit never gets set by
// accident.
//
// Int has value semantics: every method that produces a result either
// mutates the receiver explicitly or returns a new Int. There is no
// aliasing between distinct Ints.
type Int struct {
	n [Limbs]uint64
}

// Zero returns the Int 0.
func Zero() Int { return Int{} }

// One returns the Int 1.
func One() Int { return Int{n: [Limbs]uint64{1}} }

// FromUint64 returns an Int holding the unsigned value v.
func FromUint64(v uint64) Int {
	return Int{n: [Limbs]uint64{v}}
}

// FromInt64 returns an Int holding the signed value v, sign-extended
// across all five limbs.
func FromInt64(v int64) Int {
	var a Int
	a.SetInt64(v)
	return a
}

// SetInt64 sets a to the signed value v.
func (a *Int) SetInt64(v int64) {
	a.n[0] = uint64(v)
	var fill uint64
	if v < 0 {
		fill = ^uint64(0)
	}
	for i := 1; i < Limbs; i++ {
		a.n[i] = fill
	}
}

// SetUint64 sets a to the unsigned value v.
func (a *Int) SetUint64(v uint64) {
	a.n[0] = v
	for i := 1; i < Limbs; i++ {
		a.n[i] = 0
	}
}

// Set sets a to b.
func (a *Int) Set(b *Int) {
	a.n = b.n
}

// Limb returns limb i (0 is least significant).
func (a *Int) Limb(i int) uint64 { return a.n[i] }

// SetLimb sets limb i to v.
func (a *Int) SetLimb(i int, v uint64) { a.n[i] = v }

// Clear zeroes every limb of a.
func (a *Int) Clear() {
	for i := range a.n {
		a.n[i] = 0
	}
}

// IsZero reports whether a is 0.
func (a *Int) IsZero() bool {
	for _, w := range a.n {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether a is 1.
func (a *Int) IsOne() bool {
	if a.n[0] != 1 {
		return false
	}
	for i := 1; i < Limbs; i++ {
		if a.n[i] != 0 {
			return false
		}
	}
	return true
}

// IsNegative reports whether the sign bit (bit 319) is set.
func (a *Int) IsNegative() bool {
	return a.n[Limbs-1]>>63 == 1
}

// IsPositive reports whether the sign bit is clear (zero counts as
// positive).
func (a *Int) IsPositive() bool {
	return !a.IsNegative()
}

// IsStrictPositive reports whether a is positive and nonzero.
func (a *Int) IsStrictPositive() bool {
	return a.IsPositive() && !a.IsZero()
}

// IsEven reports whether the least significant bit is clear.
func (a *Int) IsEven() bool {
	return a.n[0]&1 == 0
}

// IsOdd reports whether the least significant bit is set.
func (a *Int) IsOdd() bool {
	return a.n[0]&1 == 1
}

// IsEqual reports whether a and b hold the same 320-bit pattern.
func (a *Int) IsEqual(b *Int) bool {
	return a.n == b.n
}

// cmpRaw compares a and b as plain 320-bit unsigned magnitudes,
// top limb first, ignoring any sign interpretation.
func (a *Int) cmpRaw(b *Int) int {
	for i := Limbs - 1; i >= 0; i-- {
		if a.n[i] != b.n[i] {
			if a.n[i] < b.n[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares a and b as signed 320-bit integers: -1 if a<b, 0 if
// a==b, 1 if a>b.
func (a *Int) Cmp(b *Int) int {
	asign := a.IsNegative()
	bsign := b.IsNegative()
	if asign != bsign {
		if asign {
			return -1
		}
		return 1
	}
	return a.cmpRaw(b)
}

// CmpUnsigned compares a and b as unsigned 320-bit magnitudes,
// regardless of the sign bit. Used by modular code once operands are
// known to be reduced into [0, modulus).
func (a *Int) CmpUnsigned(b *Int) int {
	return a.cmpRaw(b)
}

// IsLower reports whether a < b (signed).
func (a *Int) IsLower(b *Int) bool { return a.Cmp(b) < 0 }

// IsLowerOrEqual reports whether a <= b (signed).
func (a *Int) IsLowerOrEqual(b *Int) bool { return a.Cmp(b) <= 0 }

// IsGreater reports whether a > b (signed).
func (a *Int) IsGreater(b *Int) bool { return a.Cmp(b) > 0 }

// IsGreaterOrEqual reports whether a >= b (signed).
func (a *Int) IsGreaterOrEqual(b *Int) bool { return a.Cmp(b) >= 0 }

// GetBitLength returns the position of the highest set bit plus one,
// or 0 if a is zero. It treats a as an unsigned magnitude.
func (a *Int) GetBitLength() int {
	for i := Limbs - 1; i >= 0; i-- {
		if a.n[i] != 0 {
			return i*64 + bits.Len64(a.n[i])
		}
	}
	return 0
}

// GetLowestBit returns the index of the lowest set bit. The result is
// unspecified when a is zero.
func (a *Int) GetLowestBit() int {
	for i := 0; i < Limbs; i++ {
		if a.n[i] != 0 {
			return i*64 + bits.TrailingZeros64(a.n[i])
		}
	}
	return -1
}

// GetBit returns bit n (0 = least significant) as 0 or 1.
func (a *Int) GetBit(n uint) int {
	limb := n / 64
	if int(limb) >= Limbs {
		return 0
	}
	return int((a.n[limb] >> (n % 64)) & 1)
}
