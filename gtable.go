// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "github.com/vaultkey/secp256k1/bigint"

// GTable holds the 256*32 precomputed multiples of G: GTable[256*i+j]
// is (j+1)*256^i*G, for i in [0,32) (one slot per byte of a 256-bit
// scalar) and j in [0,255) (one slot per nonzero byte value). Slot
// 256*i+255 is not addressable by ComputePublicKey (no byte value maps
// to it) and exists only as a populated extra point for checkGTable to
// validate.
var GTable [256 * 32]Point

// buildGTable fills GTable from G. It must run after Init has
// installed the field and K1 constants, since it exercises the
// projective/affine arithmetic those depend on.
func buildGTable() {
	n := G
	for i := 0; i < 32; i++ {
		GTable[i*256] = n
		n = DoubleDirect(&n)
		for j := 1; j < 255; j++ {
			GTable[i*256+j] = n
			n = AddDirect(&n, &GTable[i*256])
		}
		GTable[i*256+255] = n
	}
}

// ComputePublicKey multiplies G by privKey using GTable: each byte of
// the scalar (0 = least significant, matching GTable row i holding
// multiples of 256^i*G) selects one precomputed multiple, summed via
// the mixed-Z Add2. It rejects a zero private key, which has no
// corresponding public key.
func ComputePublicKey(privKey *bigint.Int) (Point, error) {
	var q Point

	i := 0
	var b byte
	for ; i < 32; i++ {
		b = privKey.Byte(i)
		if b != 0 {
			break
		}
	}
	if i == 32 {
		return q, makeError(ErrPrivKeyIsZero, "private key is zero")
	}

	q = GTable[256*i+int(b-1)]
	i++

	for ; i < 32; i++ {
		b = privKey.Byte(i)
		if b != 0 {
			q = Add2(&q, &GTable[256*i+int(b-1)])
		}
	}

	q.Reduce()
	return q, nil
}
