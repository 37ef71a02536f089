// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "testing"

func TestGetAddressKnownVector(t *testing.T) {
	Init()
	priv, compressed, err := DecodePrivateKey("5HqoeNmaz17FwZRqn7kCBP1FyJKSe4tt42XZB7426EJ2MVWDeqk")
	if err != nil {
		t.Fatalf("DecodePrivateKey: %v", err)
	}
	pub, err := ComputePublicKey(&priv)
	if err != nil {
		t.Fatalf("ComputePublicKey: %v", err)
	}

	addr, err := GetAddress(P2PKH, compressed, &pub)
	if err != nil {
		t.Fatalf("GetAddress: %v", err)
	}
	want := "15t3Nt1zyMETkHbjJTTshxLnqPzQvAtdCe"
	if addr != want {
		t.Fatalf("GetAddress: got %q want %q", addr, want)
	}
}

func TestGetAddressBech32KnownVector(t *testing.T) {
	Init()
	priv, compressed, err := DecodePrivateKey("L2wAVD273GwAxGuEDHvrCqPfuWg5wWLZWy6H3hjsmhCvNVuCERAQ")
	if err != nil {
		t.Fatalf("DecodePrivateKey: %v", err)
	}
	pub, err := ComputePublicKey(&priv)
	if err != nil {
		t.Fatalf("ComputePublicKey: %v", err)
	}

	addr, err := GetAddress(BECH32, compressed, &pub)
	if err != nil {
		t.Fatalf("GetAddress: %v", err)
	}
	want := "bc1q6tqytpg06uhmtnhn9s4f35gkt8yya5a24dptmn"
	if addr != want {
		t.Fatalf("GetAddress: got %q want %q", addr, want)
	}
}

func TestGetAddressP2SHRequiresCompressed(t *testing.T) {
	Init()
	priv, _, err := DecodePrivateKey("5HqoeNmaz17FwZRqn7kCBP1FyJKSe4tt42XZB7426EJ2MVWDeqk")
	if err != nil {
		t.Fatalf("DecodePrivateKey: %v", err)
	}
	pub, err := ComputePublicKey(&priv)
	if err != nil {
		t.Fatalf("ComputePublicKey: %v", err)
	}

	if _, err := GetAddress(P2SH, false, &pub); err == nil {
		t.Fatalf("expected an error for P2SH with an uncompressed key")
	}
}

func TestCheckAddressRoundTrip(t *testing.T) {
	Init()
	priv, compressed, err := DecodePrivateKey("KxMUSkFhEzt2eJHscv2vNSTnnV2cgAXgL4WDQBTx7Ubd9TZmACAz")
	if err != nil {
		t.Fatalf("DecodePrivateKey: %v", err)
	}
	pub, err := ComputePublicKey(&priv)
	if err != nil {
		t.Fatalf("ComputePublicKey: %v", err)
	}
	addr, err := GetAddress(P2PKH, compressed, &pub)
	if err != nil {
		t.Fatalf("GetAddress: %v", err)
	}
	if !CheckAddress(addr) {
		t.Fatalf("CheckAddress rejected a well-formed address %q", addr)
	}
	if CheckAddress(addr[:len(addr)-1]) {
		t.Fatalf("CheckAddress accepted a truncated address")
	}
}
