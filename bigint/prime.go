package bigint

// modMulFull computes a*b mod m via the full double-width Mul512
// product, folded into the modulus one bit at a time. Int.Mul keeps
// only the low 320 bits of the 512-bit product, which silently
// discards the high bits whenever the operands are close to the
// 256/320-bit widths this package actually deals in; every modular
// multiply here must reduce the full product instead.
func modMulFull(a, b, m *Int) Int {
	full := Mul512(a, b)
	result := Zero()
	for i := 2*Limbs - 1; i >= 0; i-- {
		result = foldReduceLimb(&result, full[i], m)
	}
	return result
}

// foldReduceLimb folds one more 64-bit limb of a big-endian digit
// stream into result: result = (result*2^64 + limb) mod m. Used by
// modMulFull to reduce a double-width product limb by limb without a
// double-width division primitive.
func foldReduceLimb(result *Int, limb uint64, m *Int) Int {
	r := *result
	for i := 0; i < 64; i++ {
		r.Add(&r)
		if r.CmpUnsigned(m) >= 0 {
			r.Sub(m)
		}
	}
	bit := FromUint64(limb)
	if bit.CmpUnsigned(m) >= 0 {
		bit.Mod(m)
	}
	r.Add(&bit)
	if r.CmpUnsigned(m) >= 0 {
		r.Sub(m)
	}
	return r
}

// modPow computes base^exp mod m using left-to-right square-and-multiply,
// reducing the full double-width product at each step via modMulFull.
// It is only used by the primality test, which is not a hot path, so
// it does not need the field package's Montgomery/K1 machinery.
func modPow(base, exp, m *Int) Int {
	result := One()
	b := *base
	b.Mod(m)
	e := *exp
	bitLen := e.GetBitLength()
	for i := bitLen - 1; i >= 0; i-- {
		result = modMulFull(&result, &result, m)
		if e.GetBit(uint(i)) == 1 {
			result = modMulFull(&result, &b, m)
		}
	}
	return result
}

// millerRabinBases are the small fixed witnesses used by
// IsProbablePrime. They are deterministic for any 320-bit candidate in
// the sense that matters here: false positives are astronomically
// unlikely for the key-sized numbers this library actually tests.
var millerRabinBases = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsProbablePrime runs Miller-Rabin with the bases in millerRabinBases
// and reports whether a is probably prime. A false result means a is
// definitely composite; a true result means a is prime with
// overwhelming probability.
func (a *Int) IsProbablePrime() bool {
	if a.IsLowerOrEqual(&Int{n: [Limbs]uint64{1}}) {
		return false
	}
	two := FromUint64(2)
	if a.IsEqual(&two) {
		return true
	}
	if a.IsEven() {
		return false
	}

	nMinus1 := *a
	one := One()
	nMinus1.Sub(&one)

	// Write n-1 = d * 2^r with d odd.
	d := nMinus1
	r := 0
	for d.IsEven() {
		d.RshUnsigned(1)
		r++
	}

	for _, wBase := range millerRabinBases {
		w := FromUint64(wBase)
		if w.CmpUnsigned(a) >= 0 {
			continue
		}
		x := modPow(&w, &d, a)
		if x.IsOne() || x.IsEqual(&nMinus1) {
			continue
		}
		composite := true
		for i := 0; i < r-1; i++ {
			x = modMulFull(&x, &x, a)
			if x.IsEqual(&nMinus1) {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// factorialCount is the number of precomputed factorials (0! .. 67!)
// exposed through Factorial (Check does not read them); 67! is the largest factorial that
// still fits in the 320-bit Int without losing precision to overflow.
const factorialCount = 68

var factorials [factorialCount]Int

func init() {
	factorials[0] = One()
	acc := One()
	for i := 1; i < factorialCount; i++ {
		acc, _ = acc.MulSingle(uint64(i))
		factorials[i] = acc
	}
}

// Factorial returns i! for i in [0, 67]; it panics outside that range
// since larger factorials would silently overflow the fixed width.
func Factorial(i int) Int {
	if i < 0 || i >= factorialCount {
		panic("bigint: factorial out of precomputed range")
	}
	return factorials[i]
}
