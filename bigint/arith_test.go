package bigint

import "testing"

// TestMulSingle tests the scalar multiply's overflow word against a
// product that is known to spill past 320 bits.
func TestMulSingle(t *testing.T) {
	a := FromUint64(0xFFFFFFFFFFFFFFFF)
	a.n[4] = 0xFFFFFFFFFFFFFFFF
	result, high := a.MulSingle(2)
	if high == 0 {
		t.Fatal("expected nonzero overflow word multiplying a near-max value by 2")
	}
	want := FromUint64(0xFFFFFFFFFFFFFFFE)
	if result.Limb(0) != want.Limb(0) {
		t.Fatalf("low limb: got %016x want %016x", result.Limb(0), want.Limb(0))
	}
}

// TestMul512SchoolbookAgreesWithTruncated tests that the low five
// limbs of Mul512 match what Mul computes, since Mul is defined as a
// truncation of the same product.
func TestMul512SchoolbookAgreesWithTruncated(t *testing.T) {
	a := FromUint64(123456789)
	b := FromUint64(987654321)
	full := Mul512(&a, &b)

	c := a
	c.Mul(&b)
	for i := 0; i < Limbs; i++ {
		if c.Limb(i) != full[i] {
			t.Fatalf("limb %d: Mul gave %016x, Mul512 gave %016x", i, c.Limb(i), full[i])
		}
	}

	want := FromUint64(123456789 * 987654321)
	if !c.IsEqual(&want) {
		t.Fatalf("123456789*987654321: got %s want %s", c.Base10(), want.Base10())
	}
}
