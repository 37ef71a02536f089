// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"testing"

	"github.com/vaultkey/secp256k1/bigint"
)

func TestComputePublicKeyMatchesMulDirect(t *testing.T) {
	Init()
	for _, v := range []uint64{1, 2, 3, 255, 256, 65536, 12345678} {
		scalar := bigint.FromUint64(v)

		want := MulDirect(&G, &scalar)
		got, err := ComputePublicKey(&scalar)
		if err != nil {
			t.Fatalf("ComputePublicKey(%d): %v", v, err)
		}
		if !got.Equals(&want) {
			t.Errorf("ComputePublicKey(%d) != MulDirect(G,%d): got (%s,%s) want (%s,%s)",
				v, v, got.X.Base16(), got.Y.Base16(), want.X.Base16(), want.Y.Base16())
		}
	}
}

func TestComputePublicKeyRejectsZero(t *testing.T) {
	Init()
	zero := bigint.Zero()
	if _, err := ComputePublicKey(&zero); err == nil {
		t.Fatalf("ComputePublicKey(0) did not return an error")
	}
}

func TestGTableEntriesOnCurve(t *testing.T) {
	Init()
	for _, idx := range []int{0, 1, 254, 255, 256, 511, 256 * 31, 256*32 - 1} {
		if !EC(&GTable[idx]) {
			t.Errorf("GTable[%d] is not on the curve", idx)
		}
	}
}
