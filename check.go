// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"

	"github.com/vaultkey/secp256k1/bigint"
)

// Check runs a self-test against a handful of concrete point, key and
// address vectors, mirroring Secp256K1::Check in the original source.
// It returns the first failure found, or nil if every check passes.
func Check() error {
	Init()

	checks := []struct {
		name string
		fn   func() error
	}{
		{"GTable", checkGTable},
		{"Double", checkDouble},
		{"Add", checkAdd},
		{"GenKey", checkGenKey},
		{"GenAddr", checkGenAddr},
		{"CalcPubKeyFull", checkCalcPubKeyFull},
		{"CalcPubKeyEven", checkCalcPubKeyEven},
		{"CalcPubKeyOdd", checkCalcPubKeyOdd},
	}
	for _, c := range checks {
		if err := c.fn(); err != nil {
			return fmt.Errorf("secp256k1: check %s: %w", c.name, err)
		}
	}
	return nil
}

func checkGTable() error {
	for i := range GTable {
		if !EC(&GTable[i]) {
			return fmt.Errorf("GTable[%d] is not on the curve", i)
		}
	}
	return nil
}

func checkDouble() error {
	r := Double(&G)
	r.Reduce()
	if !EC(&r) {
		return fmt.Errorf("Double(G) is not on the curve")
	}
	return nil
}

func checkAdd() error {
	r1 := Double(&G)
	r2 := Add(&G, &r1)
	r3 := Add(&r1, &r2)
	r3.Reduce()
	if !EC(&r3) {
		return fmt.Errorf("Add(Double(G), Add(G, Double(G))) is not on the curve")
	}
	return nil
}

func checkGenKey() error {
	var priv bigint.Int
	if err := priv.SetBase16("46B9E861B63D3509C88B7817275A30D22D62C8CD8FA6486DDEE35EF0D8E0495F"); err != nil {
		return err
	}
	pub, err := ComputePublicKey(&priv)
	if err != nil {
		return err
	}

	var want Point
	if err := want.X.SetBase16("2500E7F3FBDDF2842903F544DDC87494CE95029ACE4E257D54BA77F2BC1F3A88"); err != nil {
		return err
	}
	if err := want.Y.SetBase16("37A9461C4F1C57FECC499753381E772A128A5820A924A2FA05162EB662987A9F"); err != nil {
		return err
	}
	want.Z = bigint.One()

	if !pub.Equals(&want) {
		return fmt.Errorf("ComputePublicKey mismatch: got (%s, %s)", pub.X.Base16(), pub.Y.Base16())
	}
	return nil
}

func checkGenAddr() error {
	vectors := []struct {
		address string
		wif     string
	}{
		{"15t3Nt1zyMETkHbjJTTshxLnqPzQvAtdCe", "5HqoeNmaz17FwZRqn7kCBP1FyJKSe4tt42XZB7426EJ2MVWDeqk"},
		{"1BoatSLRHtKNngkdXEeobR76b53LETtpyT", "5J4XJRyLVgzbXEgh8VNi4qovLzxRftzMd8a18KkdXv4EqAwX3tS"},
		{"1Test6BNjSJC5qwYXsjwKVLvz7DpfLehy", "5HytzR8p5hp8Cfd8jsVFnwMNXMsEW1sssFxMQYqEUjGZN72iLJ2"},
		{"16S5PAsGZ8VFM1CRGGLqm37XHrp46f6CTn", "KxMUSkFhEzt2eJHscv2vNSTnnV2cgAXgL4WDQBTx7Ubd9TZmACAz"},
		{"1Tst2RwMxZn9cYY5mQhCdJic3JJrK7Fq7", "L1vamTpSeK9CgynRpSJZeqvUXf6dJa25sfjb2uvtnhj65R5TymgF"},
		{"3CyQYcByvcWK8BkYJabBS82yDLNWt6rWSx", "KxMUSkFhEzt2eJHscv2vNSTnnV2cgAXgL4WDQBTx7Ubd9TZmACAz"},
		{"31to1KQe67YjoDfYnwFJThsGeQcFhVDM5Q", "KxV2Tx5jeeqLHZ1V9ufNv1doTZBZuAc5eY24e6b27GTkDhYwVad7"},
		{"bc1q6tqytpg06uhmtnhn9s4f35gkt8yya5a24dptmn", "L2wAVD273GwAxGuEDHvrCqPfuWg5wWLZWy6H3hjsmhCvNVuCERAQ"},
	}
	for _, v := range vectors {
		ok, err := verifyAddress(v.address, v.wif)
		if err != nil {
			return fmt.Errorf("%s: %w", v.address, err)
		}
		if !ok {
			return fmt.Errorf("%s: address does not match WIF %s", v.address, v.wif)
		}
	}
	return nil
}

// verifyAddress decodes wif, derives its public key, and checks that
// GetAddress reproduces address. The address type is picked from its
// leading character the same way CheckAddress does in the original
// source.
func verifyAddress(address, wif string) (bool, error) {
	priv, compressed, err := DecodePrivateKey(wif)
	if err != nil {
		return false, err
	}
	pub, err := ComputePublicKey(&priv)
	if err != nil {
		return false, err
	}

	var addrType AddressType
	switch address[0] {
	case '1':
		addrType = P2PKH
	case '3':
		addrType = P2SH
	case 'b', 'B':
		addrType = BECH32
	default:
		return false, fmt.Errorf("unrecognized address prefix %q", address[0])
	}

	got, err := GetAddress(addrType, compressed, &pub)
	if err != nil {
		return false, err
	}
	return got == address, nil
}

func checkCalcPubKeyFull() error {
	var pub Point
	if err := pub.X.SetBase16("75249C39F38BAA6BF20AB472191292349426DC3652382CDC45F65695946653DC"); err != nil {
		return err
	}
	if err := pub.Y.SetBase16("978B2659122FE1DF1BE132167F27B74E5D4A2F3ECBBBD0B3FBCC2F4983518674"); err != nil {
		return err
	}
	if !EC(&pub) {
		return fmt.Errorf("full-form pubkey is not on the curve")
	}
	return nil
}

func checkCalcPubKeyEven() error {
	var pub Point
	if err := pub.X.SetBase16("C931AF9F331B7A9EB2737667880DACB91428906FBFFAD0173819A873172D21C4"); err != nil {
		return err
	}
	pub.Y = GetY(&pub.X, true)
	if !pub.Y.IsEven() {
		return fmt.Errorf("GetY(x,true) returned an odd y")
	}
	if !EC(&pub) {
		return fmt.Errorf("even-parity pubkey is not on the curve")
	}
	return nil
}

func checkCalcPubKeyOdd() error {
	var pub Point
	if err := pub.X.SetBase16("3BF3D80F868FA33C6353012CB427E98B080452F19B5C1149EA2ACFE4B7599739"); err != nil {
		return err
	}
	pub.Y = GetY(&pub.X, false)
	if pub.Y.IsEven() {
		return fmt.Errorf("GetY(x,false) returned an even y")
	}
	if !EC(&pub) {
		return fmt.Errorf("odd-parity pubkey is not on the curve")
	}
	return nil
}
