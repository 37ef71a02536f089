package field

import (
	"testing"

	"github.com/vaultkey/secp256k1/bigint"
)

func secp256k1Prime() bigint.Int {
	var p bigint.Int
	if err := p.SetBase16("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"); err != nil {
		panic(err)
	}
	return p
}

// TestModMulAgreesWithSchoolbook tests that the Montgomery-backed
// ModMul matches a plain schoolbook multiply reduced the slow way, for
// a handful of field elements.
func TestModMulAgreesWithSchoolbook(t *testing.T) {
	p := secp256k1Prime()
	f := SetupField(&p)

	tests := []struct{ a, b uint64 }{
		{2, 3}, {123456789, 987654321}, {1, 1}, {0, 5},
	}
	for i, test := range tests {
		a := bigint.FromUint64(test.a)
		b := bigint.FromUint64(test.b)
		got := f.ModMul(&a, &b)
		want := plainModMul(&a, &b, &p)
		if !got.IsEqual(&want) {
			t.Errorf("#%d: ModMul(%d,%d): got %s want %s", i, test.a, test.b, got.Base10(), want.Base10())
		}
	}
}

// TestModInvRoundTrip tests that ModInv(a)*a == 1 mod p for a handful
// of field elements.
func TestModInvRoundTrip(t *testing.T) {
	p := secp256k1Prime()
	f := SetupField(&p)

	for _, v := range []uint64{1, 2, 3, 12345, 999999937} {
		a := bigint.FromUint64(v)
		inv := f.ModInv(&a)
		got := f.ModMul(&a, &inv)
		one := bigint.One()
		if !got.IsEqual(&one) {
			t.Errorf("ModInv(%d)*%d mod p: got %s want 1", v, v, got.Base10())
		}
	}
}

// TestModSqrtRoundTrip tests that squaring ModSqrt's result recovers
// the original value for a handful of quadratic residues.
func TestModSqrtRoundTrip(t *testing.T) {
	p := secp256k1Prime()
	f := SetupField(&p)

	for _, v := range []uint64{4, 9, 16, 25, 1234321} {
		a := bigint.FromUint64(v)
		if !f.HasSqrt(&a) {
			t.Fatalf("%d: expected HasSqrt true for a perfect square", v)
		}
		root := f.ModSqrt(&a)
		square := f.ModSquare(&root)
		if !square.IsEqual(&a) {
			t.Errorf("ModSqrt(%d)^2 mod p: got %s want %d", v, square.Base10(), v)
		}
	}
}

// TestModAddSubRoundTrip tests that ModAdd followed by ModSub of the
// same operand returns the original value.
func TestModAddSubRoundTrip(t *testing.T) {
	p := secp256k1Prime()
	f := SetupField(&p)

	a := bigint.FromUint64(42)
	b := bigint.FromUint64(17)
	sum := a
	f.ModAdd(&sum, &b)
	f.ModSub(&sum, &b)
	if !sum.IsEqual(&a) {
		t.Fatalf("ModAdd/ModSub round trip: got %s want %s", sum.Base10(), a.Base10())
	}
}

// TestModExpAgainstRepeatedSquareMultiply tests ModExp against the
// same computation performed manually via ModMul/ModSquare.
func TestModExpAgainstRepeatedSquareMultiply(t *testing.T) {
	p := secp256k1Prime()
	f := SetupField(&p)

	a := bigint.FromUint64(7)
	e := bigint.FromUint64(13)
	got := f.ModExp(&a, &e)

	want := bigint.One()
	for i := 0; i < 13; i++ {
		want = f.ModMul(&want, &a)
	}
	if !got.IsEqual(&want) {
		t.Fatalf("ModExp(7,13): got %s want %s", got.Base10(), want.Base10())
	}
}
