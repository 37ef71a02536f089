// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"github.com/ModChain/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// AddressType selects which address encoding GetAddress produces.
type AddressType int

const (
	// P2PKH is a legacy pay-to-pubkey-hash address ('1...' on mainnet).
	P2PKH AddressType = iota
	// P2SH is a pay-to-script-hash address wrapping a
	// pay-to-witness-pubkey-hash redeem script ('3...' on mainnet).
	P2SH
	// BECH32 is a native segwit v0 address ('bc1...' on mainnet).
	BECH32
)

const (
	p2pkhVersion = 0x00
	p2shVersion  = 0x05
)

// GetHash160 returns the RIPEMD-160(SHA-256(.)) hash an address is
// built from. For P2PKH and BECH32 that's the hash of the serialized
// public key; P2SH instead hashes a redeem script ("OP_0 PUSH20
// <p2pkh hash160>", a P2WPKH witness program) wrapping the P2PKH hash,
// since this package only ever builds P2SH-wrapped P2WPKH scripts.
func GetHash160(addrType AddressType, compressed bool, pubKey *Point) [20]byte {
	pubKeyBytes := GetPublicKey(compressed, pubKey)

	switch addrType {
	case P2PKH, BECH32:
		sum := DefaultHashService.SHA256(pubKeyBytes)
		return DefaultHashService.RIPEMD160(sum[:])

	case P2SH:
		inner := GetHash160(P2PKH, compressed, pubKey)
		script := make([]byte, 22)
		script[0] = 0x00 // OP_0
		script[1] = 0x14 // push 20 bytes
		copy(script[2:], inner[:])
		sum := DefaultHashService.SHA256(script)
		return DefaultHashService.RIPEMD160(sum[:])

	default:
		panic("secp256k1: unknown address type")
	}
}

// GetAddress renders pubKey as a mainnet address of the given type.
// BECH32 and P2SH both require a compressed key, matching the
// original's restriction (segwit has no uncompressed form, and this
// package only ever wraps compressed-key redeem scripts).
func GetAddress(addrType AddressType, compressed bool, pubKey *Point) (string, error) {
	if addrType == BECH32 && !compressed {
		return "", makeError(ErrPubKeyInvalidFormat, "BECH32 addresses require a compressed public key")
	}
	if addrType == P2SH && !compressed {
		return "", makeError(ErrPubKeyInvalidFormat, "P2SH addresses require a compressed public key")
	}

	hash := GetHash160(addrType, compressed, pubKey)

	if addrType == BECH32 {
		return encodeSegwitAddress(hash[:])
	}

	var version byte
	switch addrType {
	case P2PKH:
		version = p2pkhVersion
	case P2SH:
		version = p2shVersion
	default:
		panic("secp256k1: unknown address type")
	}
	return encodeBase58Check(version, hash[:]), nil
}

// encodeBase58Check prepends version to payload, appends the trailing
// double-SHA256 checksum, and Base58-encodes the result.
func encodeBase58Check(version byte, payload []byte) string {
	buf := make([]byte, 1+len(payload)+4)
	buf[0] = version
	copy(buf[1:], payload)
	sum := doubleSHA256(buf[:1+len(payload)])
	copy(buf[1+len(payload):], sum[:4])
	return base58.Bitcoin.Encode(buf)
}

// encodeSegwitAddress renders a segwit v0 witness program as a Bech32
// address under the "bc" (mainnet) human-readable part, the way
// segwit_addr_encode does in the original source.
func encodeSegwitAddress(program []byte) (string, error) {
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", makeErrorf(ErrPubKeyInvalidFormat, "bech32 bit conversion: %v", err)
	}
	data := make([]byte, 0, len(converted)+1)
	data = append(data, 0) // witness version 0
	data = append(data, converted...)
	addr, err := bech32.Encode("bc", data)
	if err != nil {
		return "", makeErrorf(ErrPubKeyInvalidFormat, "bech32 encode: %v", err)
	}
	return addr, nil
}

// CheckAddress reports whether address is a well-formed Base58Check
// payload (25 bytes, trailing checksum matches). It does not
// distinguish P2PKH from P2SH; both share this structural check.
func CheckAddress(address string) bool {
	raw, err := base58.Bitcoin.Decode(address)
	if err != nil {
		return false
	}
	if len(raw) != 25 {
		return false
	}
	return checksumOK(raw[:21], raw[21:25])
}
