// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"sync"

	"github.com/vaultkey/secp256k1/bigint"
	"github.com/vaultkey/secp256k1/field"
)

var (
	// P is the secp256k1 field prime, 2^256 - 2^32 - 977.
	P bigint.Int

	// G is the generator point, in affine form (Z=1).
	G Point

	// N is the order of G.
	N bigint.Int

	// halfN is (N>>1)+1, the modular inverse of 2 mod N. HalveDirect
	// uses it in place of duplicating MulDirect's double-and-add loop.
	halfN bigint.Int

	// halfG is G divided by 2, i.e. HalveDirect(G). Computed once by
	// Init rather than carried as a literal, since it is fully
	// determined by G and N.
	halfG Point

	// fld is the generic Montgomery field over P, used by GetY/ModSqrt
	// where the K1 fast path has no specialization (square roots are
	// rare enough off the hot scalar-mult path that CIOS is fine).
	fld *field.Field

	initOnce sync.Once
)

// Init installs the field, curve order and generator table this
// package's arithmetic depends on. It is idempotent: subsequent calls
// after the first are no-ops. Every exported function in this package
// other than the bigint/field-level primitives requires Init to have
// run first.
func Init() {
	initOnce.Do(initOnceBody)
}

func initOnceBody() {
	if err := P.SetBase16("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"); err != nil {
		panic(err)
	}
	if err := N.SetBase16("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"); err != nil {
		panic(err)
	}

	fld = field.SetupField(&P)
	field.InitK1(&P)
	field.InitK1order(&N)

	one := bigint.One()
	halfN = N
	halfN.RshUnsigned(1)
	halfN.Add(&one)

	const gHex = "0479BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"
	pt, _, err := ParsePublicKeyHex(gHex)
	if err != nil {
		panic(err)
	}
	G = pt

	buildGTable()

	halfG = HalveDirect(&G)
}

// Add adds two projective points whose difference is known not to be
// the identity and whose affine representatives are known to differ.
// Callers that might be adding a point to itself must call Double
// instead; Add does not check for that case, matching the original
// formula this is grounded on.
func Add(p1, p2 *Point) Point {
	u1 := field.ModMulK1(&p2.Y, &p1.Z)
	u2 := field.ModMulK1(&p1.Y, &p2.Z)
	v1 := field.ModMulK1(&p2.X, &p1.Z)
	v2 := field.ModMulK1(&p1.X, &p2.Z)
	u := field.ModSubK1(&u1, &u2)
	v := field.ModSubK1(&v1, &v2)
	w := field.ModMulK1(&p1.Z, &p2.Z)
	us2 := field.ModSquareK1(&u)
	vs2 := field.ModSquareK1(&v)
	vs3 := field.ModMulK1(&vs2, &v)
	us2w := field.ModMulK1(&us2, &w)
	vs2v2 := field.ModMulK1(&vs2, &v2)
	_2vs2v2 := field.ModAddK1(&vs2v2, &vs2v2)
	a := field.ModSubK1(&us2w, &vs3)
	a = field.ModSubK1(&a, &_2vs2v2)

	var r Point
	r.X = field.ModMulK1(&v, &a)

	vs3u2 := field.ModMulK1(&vs3, &u2)
	r.Y = field.ModSubK1(&vs2v2, &a)
	r.Y = field.ModMulK1(&r.Y, &u)
	r.Y = field.ModSubK1(&r.Y, &vs3u2)

	r.Z = field.ModMulK1(&vs3, &w)
	return r
}

// Add2 is Add specialized for p2.Z == 1, the form every entry in
// GTable is stored in. Callers must ensure p2.Z is actually 1; Add2
// does not check.
func Add2(p1, p2 *Point) Point {
	u1 := field.ModMulK1(&p2.Y, &p1.Z)
	v1 := field.ModMulK1(&p2.X, &p1.Z)
	u := field.ModSubK1(&u1, &p1.Y)
	v := field.ModSubK1(&v1, &p1.X)
	us2 := field.ModSquareK1(&u)
	vs2 := field.ModSquareK1(&v)
	vs3 := field.ModMulK1(&vs2, &v)
	us2w := field.ModMulK1(&us2, &p1.Z)
	vs2v2 := field.ModMulK1(&vs2, &p1.X)
	_2vs2v2 := field.ModAddK1(&vs2v2, &vs2v2)
	a := field.ModSubK1(&us2w, &vs3)
	a = field.ModSubK1(&a, &_2vs2v2)

	var r Point
	r.X = field.ModMulK1(&v, &a)

	vs3u2 := field.ModMulK1(&vs3, &p1.Y)
	r.Y = field.ModSubK1(&vs2v2, &a)
	r.Y = field.ModMulK1(&r.Y, &u)
	r.Y = field.ModSubK1(&r.Y, &vs3u2)

	r.Z = field.ModMulK1(&vs3, &p1.Z)
	return r
}

// Double doubles a projective point. The curve has a=0, so the
// a*Z² term of the general doubling formula is always zero and is
// omitted rather than computed and discarded.
func Double(p *Point) Point {
	x2 := field.ModSquareK1(&p.X)
	w := field.ModAddK1(&x2, &x2)
	w = field.ModAddK1(&w, &x2)

	s := field.ModMulK1(&p.Y, &p.Z)
	b := field.ModMulK1(&p.Y, &s)
	b = field.ModMulK1(&b, &p.X)

	h := field.ModSquareK1(&w)
	_8b := field.ModAddK1(&b, &b)
	_8b = field.ModDoubleK1(&_8b)
	_8b = field.ModDoubleK1(&_8b)
	h = field.ModSubK1(&h, &_8b)

	var r Point
	r.X = field.ModMulK1(&h, &s)
	r.X = field.ModAddK1(&r.X, &r.X)

	s2 := field.ModSquareK1(&s)
	y2 := field.ModSquareK1(&p.Y)
	_8y2s2 := field.ModMulK1(&y2, &s2)
	_8y2s2 = field.ModDoubleK1(&_8y2s2)
	_8y2s2 = field.ModDoubleK1(&_8y2s2)
	_8y2s2 = field.ModDoubleK1(&_8y2s2)

	r.Y = field.ModAddK1(&b, &b)
	r.Y = field.ModAddK1(&r.Y, &r.Y)
	r.Y = field.ModSubK1(&r.Y, &h)
	r.Y = field.ModMulK1(&r.Y, &w)
	r.Y = field.ModSubK1(&r.Y, &_8y2s2)

	r.Z = field.ModMulK1(&s2, &s)
	r.Z = field.ModDoubleK1(&r.Z)
	r.Z = field.ModDoubleK1(&r.Z)
	r.Z = field.ModDoubleK1(&r.Z)
	return r
}

// AddDirect adds two affine points via the classic slope formula, at
// the cost of one field inversion. Callers adding a point to itself
// must call DoubleDirect instead.
func AddDirect(p1, p2 *Point) Point {
	var r Point
	r.Z = bigint.One()

	dy := field.ModSubK1(&p2.Y, &p1.Y)
	dx := field.ModSubK1(&p2.X, &p1.X)
	dxInv := field.ModInvK1(&dx)
	s := field.ModMulK1(&dy, &dxInv)

	sq := field.ModSquareK1(&s)
	r.X = field.ModSubK1(&sq, &p1.X)
	r.X = field.ModSubK1(&r.X, &p2.X)

	r.Y = field.ModSubK1(&p2.X, &r.X)
	r.Y = field.ModMulK1(&r.Y, &s)
	r.Y = field.ModSubK1(&r.Y, &p2.Y)
	return r
}

// SubDirect returns p1 + (-p2) in affine coordinates.
func SubDirect(p1, p2 *Point) Point {
	neg := *p2
	neg.Y = field.ModNegK1(&neg.Y)
	return AddDirect(p1, &neg)
}

// DoubleDirect doubles an affine point via the classic tangent-slope
// formula, at the cost of one field inversion.
func DoubleDirect(p *Point) Point {
	var r Point
	r.Z = bigint.One()

	sq := field.ModMulK1(&p.X, &p.X)
	num := field.ModAddK1(&sq, &sq)
	num = field.ModAddK1(&num, &sq)

	twoY := field.ModAddK1(&p.Y, &p.Y)
	twoYInv := field.ModInvK1(&twoY)
	s := field.ModMulK1(&num, &twoYInv)

	s2 := field.ModMulK1(&s, &s)
	twoX := field.ModAddK1(&p.X, &p.X)
	negTwoX := field.ModNegK1(&twoX)
	r.X = field.ModAddK1(&negTwoX, &s2)

	dx := field.ModSubK1(&r.X, &p.X)
	t := field.ModMulK1(&dx, &s)
	r.Y = field.ModAddK1(&t, &p.Y)
	r.Y = field.ModNegK1(&r.Y)
	return r
}

// MulDirect multiplies an affine point by a scalar via LSB-first
// double-and-add over the projective Add/Double pair, reducing to
// affine at the end.
func MulDirect(p *Point, s *bigint.Int) Point {
	bits := s.GetBitLength()

	p2 := *p
	var r Point
	assigned := false
	for i := 0; i < bits; i++ {
		if s.GetBit(uint(i)) == 1 {
			if !assigned {
				assigned = true
				r = p2
			} else {
				r = Add(&r, &p2)
			}
		}
		p2 = Double(&p2)
	}

	r.Reduce()
	return r
}

// HalveDirect returns p/2, i.e. the point whose doubling is p.
// Mathematically this is MulDirect(p, halfN): halfN = (N+1)/2 is the
// inverse of 2 mod the (odd) curve order N, since 2*((N+1)/2) = N+1 ≡
// 1 (mod N).
func HalveDirect(p *Point) Point {
	return MulDirect(p, &halfN)
}

// DivDirect returns p/s, i.e. MulDirect(p, s^-1 mod N).
func DivDirect(p *Point, s *bigint.Int) Point {
	sinv := field.ModInvK1order(s)
	return MulDirect(p, &sinv)
}

// NextKey returns p+G. The input must already be reduced to affine
// form and must not equal G, the preconditions AddDirect requires.
func NextKey(p *Point) Point {
	return AddDirect(p, &G)
}

// PrevKey returns p-G, under the same preconditions as NextKey.
func PrevKey(p *Point) Point {
	return SubDirect(p, &G)
}
