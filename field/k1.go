package field

import "github.com/vaultkey/secp256k1/bigint"

// k1Reducer is 2^32 + 977, the constant that makes folding the top
// half of a 512-bit product back into the bottom half equivalent to
// reduction mod the secp256k1 field prime p = 2^256 - 2^32 - 977.
const k1Reducer = 0x1000003D1

var k1P bigint.Int

// InitK1 installs the secp256k1 field prime for the ModMulK1 family.
// It must run before any K1 function is called; Curve.Init is
// responsible for sequencing that, same as the generic Field built by
// SetupField.
func InitK1(p *bigint.Int) {
	k1P = *p
}

// reduceK1 folds a 512-bit product, split into its low and high
// 256-bit halves, into a field element. Because p's only nonzero bits
// above bit 0 are the complement of 2^32+977, t_hi*2^256 ≡
// t_hi*(2^32+977) (mod p), so t mod p = t_lo + t_hi*(2^32+977) after at
// most two folds of the (tiny) secondary overflow and a final
// conditional subtract.
func reduceK1(lo, hi *bigint.Int) bigint.Int {
	sum := *lo
	fold := *hi
	for pass := 0; pass < 3; pass++ {
		if fold.IsZero() {
			break
		}
		hr, _ := fold.MulSingle(k1Reducer)
		sum.Add(&hr)
		fold = sum
		fold.RshUnsigned(256)
		sum.SetLimb(4, 0)
	}
	for sum.CmpUnsigned(&k1P) >= 0 {
		sum.Sub(&k1P)
	}
	return sum
}

// splitK1 splits the 10-limb product of two sub-256-bit operands into
// its low and high 256-bit halves. Limbs 8 and 9 of the product are
// always zero since neither operand exceeds 256 bits.
func splitK1(full [2 * bigint.Limbs]uint64) (lo, hi bigint.Int) {
	for i := 0; i < 4; i++ {
		lo.SetLimb(i, full[i])
		hi.SetLimb(i, full[i+4])
	}
	return
}

// ModMulK1 multiplies a and b mod the secp256k1 field prime using the
// fast fold-and-subtract reduction instead of generic Montgomery
// multiplication.
func ModMulK1(a, b *bigint.Int) bigint.Int {
	full := bigint.Mul512(a, b)
	lo, hi := splitK1(full)
	return reduceK1(&lo, &hi)
}

// ModSquareK1 is ModMulK1(a, a).
func ModSquareK1(a *bigint.Int) bigint.Int {
	return ModMulK1(a, a)
}

// ModDoubleK1 returns 2a mod p.
func ModDoubleK1(a *bigint.Int) bigint.Int {
	return ModAddK1(a, a)
}

// ModAddK1 returns a+b mod p, assuming both are already in [0, p).
func ModAddK1(a, b *bigint.Int) bigint.Int {
	r := *a
	r.Add(b)
	if r.CmpUnsigned(&k1P) >= 0 {
		r.Sub(&k1P)
	}
	return r
}

// ModSubK1 returns a-b mod p, assuming both are already in [0, p).
func ModSubK1(a, b *bigint.Int) bigint.Int {
	r := *a
	borrow := r.Sub(b)
	if borrow != 0 {
		r.Add(&k1P)
	}
	return r
}

// ModNegK1 returns p-a mod p (0 if a is 0).
func ModNegK1(a *bigint.Int) bigint.Int {
	if a.IsZero() {
		return bigint.Zero()
	}
	r := k1P
	r.Sub(a)
	return r
}

// ModInvK1 returns the inverse of a modulo the secp256k1 field prime,
// used by Point.Reduce and the affine Direct operations.
func ModInvK1(a *bigint.Int) bigint.Int {
	return bigint.ModInverse(a, &k1P)
}

// ModPositiveK1 brings a negative-signed representative of a field
// element back into [0, p) by adding p until the sign bit clears.
func ModPositiveK1(a *bigint.Int) bigint.Int {
	r := *a
	for r.IsNegative() {
		r.Add(&k1P)
	}
	for r.CmpUnsigned(&k1P) >= 0 {
		r.Sub(&k1P)
	}
	return r
}
