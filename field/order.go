package field

import "github.com/vaultkey/secp256k1/bigint"

// k1Order is the secp256k1 curve order n, installed by InitK1order.
// Unlike the field prime, n has no special bit pattern to exploit, so
// the K1order family reduces through the generic double-width
// multiply and shiftReduceLimb rather than a fast fold.
var k1Order bigint.Int

// InitK1order installs the secp256k1 curve order for the
// ModMulK1order family. Scalar (private key) arithmetic reduces mod n
// rather than mod p.
func InitK1order(n *bigint.Int) {
	k1Order = *n
}

// ModAddK1order returns a+b mod n, assuming both are in [0, n).
func ModAddK1order(a, b *bigint.Int) bigint.Int {
	r := *a
	r.Add(b)
	if r.CmpUnsigned(&k1Order) >= 0 {
		r.Sub(&k1Order)
	}
	return r
}

// ModSubK1order returns a-b mod n, assuming both are in [0, n).
func ModSubK1order(a, b *bigint.Int) bigint.Int {
	r := *a
	borrow := r.Sub(b)
	if borrow != 0 {
		r.Add(&k1Order)
	}
	return r
}

// ModMulK1order returns a*b mod n via the full double-width product
// and limb-by-limb shiftReduceLimb; n lacks p's special form so there is no fast
// fold here.
func ModMulK1order(a, b *bigint.Int) bigint.Int {
	full := bigint.Mul512(a, b)
	var lo, hi bigint.Int
	for i := 0; i < bigint.Limbs; i++ {
		lo.SetLimb(i, full[i])
	}
	for i := 0; i < bigint.Limbs; i++ {
		hi.SetLimb(i, full[i+bigint.Limbs])
	}
	result := bigint.Zero()
	for i := bigint.Limbs - 1; i >= 0; i-- {
		result = shiftReduceLimb(&result, hi.Limb(i), &k1Order)
	}
	for i := bigint.Limbs - 1; i >= 0; i-- {
		result = shiftReduceLimb(&result, lo.Limb(i), &k1Order)
	}
	return result
}

// ModNegK1order returns n-a mod n (0 if a is 0).
func ModNegK1order(a *bigint.Int) bigint.Int {
	if a.IsZero() {
		return bigint.Zero()
	}
	r := k1Order
	r.Sub(a)
	return r
}

// ModPositiveK1order brings a into [0, n).
func ModPositiveK1order(a *bigint.Int) bigint.Int {
	r := *a
	for r.IsNegative() {
		r.Add(&k1Order)
	}
	for r.CmpUnsigned(&k1Order) >= 0 {
		r.Sub(&k1Order)
	}
	return r
}

// ModInvK1order returns the inverse of a modulo the curve order n,
// used to divide a point by a scalar (DivDirect).
func ModInvK1order(a *bigint.Int) bigint.Int {
	return bigint.ModInverse(a, &k1Order)
}
