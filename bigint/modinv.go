package bigint

// ModInverse returns the inverse of a modulo the odd modulus m, in
// [0, m), assuming gcd(a, m) == 1 and 0 <= a < m.
//
// The original source drives this with a 62-bit batched divstep
// (Pornin's safegcd): a 2x2 matrix is accumulated over 62 single-bit
// steps and then applied to the full-width state in one shot, which is
// what makes it fast. This port uses the unbatched ancestor of that
// algorithm instead — Menezes/van Oorschot/Vanstone's Algorithm 14.61,
// the extended binary GCD — one shift-and-subtract step at a time.
// Same halving/subtracting structure (no general division anywhere),
// same number-theoretic argument for why it terminates with the
// inverse, just without the matrix batching that makes divstep fast
// and easy to get subtly wrong.
func ModInverse(a, m *Int) Int {
	if a.IsZero() {
		return Zero()
	}

	u := *a
	v := *m
	x1 := One()
	x2 := Zero()

	for !u.IsOne() && !v.IsOne() {
		for u.IsEven() {
			u.RshUnsigned(1)
			if x1.IsEven() {
				x1.Rsh(1)
			} else {
				x1.Add(m)
				x1.Rsh(1)
			}
		}
		for v.IsEven() {
			v.RshUnsigned(1)
			if x2.IsEven() {
				x2.Rsh(1)
			} else {
				x2.Add(m)
				x2.Rsh(1)
			}
		}
		if u.CmpUnsigned(&v) >= 0 {
			u.Sub(&v)
			x1.Sub(&x2)
		} else {
			v.Sub(&u)
			x2.Sub(&x1)
		}
	}

	var result Int
	if u.IsOne() {
		result = x1
	} else {
		result = x2
	}
	for result.IsNegative() {
		result.Add(m)
	}
	for result.CmpUnsigned(m) >= 0 {
		result.Sub(m)
	}
	return result
}
