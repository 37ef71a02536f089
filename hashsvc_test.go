// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "testing"

func TestDoubleSHA256KnownVector(t *testing.T) {
	// SHA256(SHA256("")) is a widely reproduced test vector.
	want := "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456"
	got := doubleSHA256(nil)
	if hexString(got[:]) != want {
		t.Fatalf("doubleSHA256(nil): got %s want %s", hexString(got[:]), want)
	}
}

func TestChecksumOK(t *testing.T) {
	payload := []byte("vaultkey")
	sum := doubleSHA256(payload)
	if !checksumOK(payload, sum[:4]) {
		t.Fatalf("checksumOK rejected a matching checksum")
	}
	bad := append([]byte{}, sum[:4]...)
	bad[0] ^= 0xFF
	if checksumOK(payload, bad) {
		t.Fatalf("checksumOK accepted a mismatched checksum")
	}
}

func hexString(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = digits[v>>4]
		out[i*2+1] = digits[v&0xF]
	}
	return string(out)
}
