// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"github.com/vaultkey/secp256k1/bigint"
	"github.com/vaultkey/secp256k1/field"
)

// Point is a secp256k1 curve point in Chudnovsky-style projective
// coordinates: the affine point is (X/Z, Y/Z), not the standard
// Jacobian (X/Z², Y/Z³). A point is affine when Z == 1, projective
// when Z is any other nonzero value, and the point at infinity when
// X == Y == 0 (Z is then irrelevant).
type Point struct {
	X, Y, Z bigint.Int
}

// Clear sets p to the point at infinity.
func (p *Point) Clear() {
	p.X.Clear()
	p.Y.Clear()
	p.Z.Clear()
}

// IsZero reports whether p is the point at infinity.
func (p *Point) IsZero() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Equals reports whether p and q hold the same coordinates. It does
// not normalize either point first; callers comparing a projective
// point against an affine one must Reduce first.
func (p *Point) Equals(q *Point) bool {
	return p.X.IsEqual(&q.X) && p.Y.IsEqual(&q.Y) && p.Z.IsEqual(&q.Z)
}

// Reduce normalizes a projective point to its affine representative
// by dividing X and Y by Z and setting Z to 1. It is the identity on
// an already-affine point and leaves the point at infinity alone.
func (p *Point) Reduce() {
	if p.IsZero() {
		return
	}
	if p.Z.IsOne() {
		return
	}
	zInv := field.ModInvK1(&p.Z)
	p.X = field.ModMulK1(&p.X, &zInv)
	p.Y = field.ModMulK1(&p.Y, &zInv)
	p.Z = bigint.One()
}
