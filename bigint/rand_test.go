package bigint

import "testing"

// TestRandWidth tests that Rand produces values with exactly the
// requested bit length, never shorter and never wrapping past it.
func TestRandWidth(t *testing.T) {
	for _, nbits := range []int{1, 8, 64, 128, 256} {
		for i := 0; i < 20; i++ {
			a := Rand(nbits)
			got := a.GetBitLength()
			if got != nbits {
				t.Fatalf("Rand(%d) iteration %d: GetBitLength() = %d", nbits, i, got)
			}
		}
	}
}

// TestRandMaxBound tests that RandMax never returns a value outside
// [0, max).
func TestRandMaxBound(t *testing.T) {
	max := FromUint64(1000)
	for i := 0; i < 200; i++ {
		a := RandMax(&max)
		if a.CmpUnsigned(&max) >= 0 {
			t.Fatalf("RandMax(1000) returned %s, out of range", a.Base10())
		}
	}
}
