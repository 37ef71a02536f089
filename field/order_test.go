package field

import (
	"testing"

	"github.com/vaultkey/secp256k1/bigint"
)

func setupK1order(t *testing.T) bigint.Int {
	var n bigint.Int
	if err := n.SetBase16("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"); err != nil {
		t.Fatalf("SetBase16: %v", err)
	}
	InitK1order(&n)
	return n
}

// TestModInvK1orderRoundTrip tests that ModInvK1order(a)*a == 1 mod n.
func TestModInvK1orderRoundTrip(t *testing.T) {
	setupK1order(t)
	for _, v := range []uint64{1, 2, 3, 12345} {
		a := bigint.FromUint64(v)
		inv := ModInvK1order(&a)
		got := ModMulK1order(&a, &inv)
		one := bigint.One()
		if !got.IsEqual(&one) {
			t.Errorf("ModInvK1order(%d)*%d mod n: got %s want 1", v, v, got.Base10())
		}
	}
}

// TestModAddSubK1orderRoundTrip tests that ModAddK1order followed by
// ModSubK1order of the same operand returns the original value.
func TestModAddSubK1orderRoundTrip(t *testing.T) {
	setupK1order(t)
	a := bigint.FromUint64(42)
	b := bigint.FromUint64(17)
	sum := ModAddK1order(&a, &b)
	back := ModSubK1order(&sum, &b)
	if !back.IsEqual(&a) {
		t.Fatalf("round trip: got %s want %s", back.Base10(), a.Base10())
	}
}

// TestModMulK1orderWraps tests that multiplying near the order
// reduces correctly rather than overflowing.
func TestModMulK1orderWraps(t *testing.T) {
	n := setupK1order(t)
	one := bigint.One()
	var nMinus1 bigint.Int
	nMinus1.Sub2(&n, &one)

	got := ModMulK1order(&nMinus1, &nMinus1)
	// (n-1)*(n-1) mod n == 1, since (n-1) == -1 mod n.
	want := bigint.One()
	if !got.IsEqual(&want) {
		t.Fatalf("(n-1)^2 mod n: got %s want 1", got.Base10())
	}
}
