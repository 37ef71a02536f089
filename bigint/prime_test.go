package bigint

import "testing"

// TestIsProbablePrimeKnownPrimes tests small known primes and
// composites, plus the secp256k1 field prime and curve order, which
// the rest of this module depends on actually being prime.
func TestIsProbablePrimeKnownPrimes(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 89, 97, 101, 7919}
	for _, p := range primes {
		a := FromUint64(p)
		if !a.IsProbablePrime() {
			t.Errorf("%d: expected prime, got composite", p)
		}
	}

	composites := []uint64{0, 1, 4, 6, 8, 9, 15, 100, 7921}
	for _, c := range composites {
		a := FromUint64(c)
		if a.IsProbablePrime() {
			t.Errorf("%d: expected composite, got prime", c)
		}
	}
}

// TestIsProbablePrimeSecp256k1Field tests that the secp256k1 field
// prime p = 2^256 - 2^32 - 977 passes Miller-Rabin.
func TestIsProbablePrimeSecp256k1Field(t *testing.T) {
	var p Int
	if err := p.SetBase16("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"); err != nil {
		t.Fatalf("SetBase16: %v", err)
	}
	if !p.IsProbablePrime() {
		t.Fatal("secp256k1 field prime did not pass Miller-Rabin")
	}
}

// TestFactorial tests the precomputed factorial table against a
// handful of hand-checked values.
func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}
	for i, test := range tests {
		got := Factorial(test.n)
		want := FromUint64(test.want)
		if !got.IsEqual(&want) {
			t.Errorf("#%d: %d!: got %s want %d", i, test.n, got.Base10(), test.want)
		}
	}
}

// TestFactorialOutOfRangePanics tests that Factorial refuses indices
// outside the precomputed table rather than silently overflowing.
func TestFactorialOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range factorial")
		}
	}()
	Factorial(factorialCount)
}
