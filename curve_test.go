// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"testing"

	"github.com/vaultkey/secp256k1/bigint"
)

func TestDoubleDirectMatchesAddDirect(t *testing.T) {
	Init()
	viaDouble := DoubleDirect(&G)

	threeG := AddDirect(&G, &viaDouble)
	viaDoubleOfDouble := DoubleDirect(&viaDouble)
	// AddDirect needs two distinct points, so 4G is reached as 3G+G.
	fourGviaAdd := AddDirect(&threeG, &G)
	if !viaDoubleOfDouble.Equals(&fourGviaAdd) {
		t.Fatalf("DoubleDirect(2G) != AddDirect(3G,G): got (%s,%s) vs (%s,%s)",
			viaDoubleOfDouble.X.Base16(), viaDoubleOfDouble.Y.Base16(),
			fourGviaAdd.X.Base16(), fourGviaAdd.Y.Base16())
	}
	if !EC(&threeG) {
		t.Fatalf("3G is not on the curve")
	}
}

func TestSubDirectUndoesAddDirect(t *testing.T) {
	Init()
	twoG := DoubleDirect(&G)
	threeG := AddDirect(&G, &twoG)

	back := SubDirect(&threeG, &G)
	if !back.Equals(&twoG) {
		t.Fatalf("SubDirect(3G, G) != 2G: got (%s,%s) want (%s,%s)",
			back.X.Base16(), back.Y.Base16(), twoG.X.Base16(), twoG.Y.Base16())
	}
}

func TestMulDirectMatchesRepeatedAdd(t *testing.T) {
	Init()
	five := bigint.FromUint64(5)
	viaMul := MulDirect(&G, &five)

	twoG := DoubleDirect(&G)
	fourG := DoubleDirect(&twoG)
	viaAdd := AddDirect(&fourG, &G)

	if !viaMul.Equals(&viaAdd) {
		t.Fatalf("MulDirect(G,5) != 4G+G: got (%s,%s) want (%s,%s)",
			viaMul.X.Base16(), viaMul.Y.Base16(), viaAdd.X.Base16(), viaAdd.Y.Base16())
	}
}

func TestHalveDirectRoundTrip(t *testing.T) {
	Init()
	twoG := DoubleDirect(&G)
	half := HalveDirect(&twoG)
	if !half.Equals(&G) {
		t.Fatalf("HalveDirect(2G) != G: got (%s,%s) want (%s,%s)",
			half.X.Base16(), half.Y.Base16(), G.X.Base16(), G.Y.Base16())
	}
}

func TestHalfGDoublesToG(t *testing.T) {
	Init()
	doubled := DoubleDirect(&halfG)
	if !doubled.Equals(&G) {
		t.Fatalf("Double(halfG) != G: got (%s,%s) want (%s,%s)",
			doubled.X.Base16(), doubled.Y.Base16(), G.X.Base16(), G.Y.Base16())
	}
}

func TestDivDirectUndoesMulDirect(t *testing.T) {
	Init()
	scalar := bigint.FromUint64(12345)
	p := MulDirect(&G, &scalar)
	back := DivDirect(&p, &scalar)
	if !back.Equals(&G) {
		t.Fatalf("DivDirect(MulDirect(G,k),k) != G: got (%s,%s) want (%s,%s)",
			back.X.Base16(), back.Y.Base16(), G.X.Base16(), G.Y.Base16())
	}
}

func TestNextKeyPrevKeyRoundTrip(t *testing.T) {
	Init()
	twoG := DoubleDirect(&G)
	next := NextKey(&twoG)
	back := PrevKey(&next)
	if !back.Equals(&twoG) {
		t.Fatalf("PrevKey(NextKey(2G)) != 2G")
	}
}

func TestAddAndAdd2Agree(t *testing.T) {
	Init()
	twoG := Double(&G)
	viaAdd := Add(&G, &twoG)

	var gAsProjective Point
	gAsProjective = G // Z == 1 already, Add2's precondition
	viaAdd2 := Add2(&twoG, &gAsProjective)

	viaAdd.Reduce()
	viaAdd2.Reduce()
	if !viaAdd.Equals(&viaAdd2) {
		t.Fatalf("Add(2G,G) != Add2(2G,G): got (%s,%s) vs (%s,%s)",
			viaAdd.X.Base16(), viaAdd.Y.Base16(), viaAdd2.X.Base16(), viaAdd2.Y.Base16())
	}
}
