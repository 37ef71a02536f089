// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"github.com/ModChain/base58"
	"github.com/vaultkey/secp256k1/bigint"
)

const wifVersion = 0x80

// DecodePrivateKey decodes a WIF (Wallet Import Format) private key:
// '5' prefixes an uncompressed key (37-byte payload, 0x80 version,
// 4-byte checksum over the first 33 bytes), 'K'/'L' prefix a
// compressed key (38 bytes, a trailing 0x01 compression marker, and
// the checksum computed over the first 34 bytes instead). It reports
// whether the key is marked compressed.
func DecodePrivateKey(wif string) (bigint.Int, bool, error) {
	var priv bigint.Int
	if len(wif) == 0 {
		return priv, false, makeError(ErrWIFTooShort, "WIF key is empty")
	}

	raw, err := base58.Bitcoin.Decode(wif)
	if err != nil {
		return priv, false, makeErrorf(ErrInvalidBase58, "WIF base58 decode: %v", err)
	}

	switch wif[0] {
	case '5':
		if len(raw) != 37 {
			return priv, false, makeErrorf(ErrWIFInvalidLen, "uncompressed WIF must decode to 37 bytes, got %d", len(raw))
		}
		if raw[0] != wifVersion {
			return priv, false, makeErrorf(ErrWIFInvalidVersion, "uncompressed WIF version byte 0x%02x, want 0x80", raw[0])
		}
		if !checksumOK(raw[:33], raw[33:37]) {
			return priv, false, makeError(ErrWIFBadChecksum, "uncompressed WIF checksum mismatch")
		}
		priv.SetBytes32(raw[1:33])
		return priv, false, nil

	case 'K', 'L':
		if len(raw) != 38 {
			return priv, true, makeErrorf(ErrWIFInvalidLen, "compressed WIF must decode to 38 bytes, got %d", len(raw))
		}
		if raw[0] != wifVersion {
			return priv, true, makeErrorf(ErrWIFInvalidVersion, "compressed WIF version byte 0x%02x, want 0x80", raw[0])
		}
		if raw[33] != 0x01 {
			return priv, true, makeError(ErrWIFInvalidVersion, "compressed WIF missing 0x01 compression marker")
		}
		if !checksumOK(raw[:34], raw[34:38]) {
			return priv, true, makeError(ErrWIFBadChecksum, "compressed WIF checksum mismatch")
		}
		priv.SetBytes32(raw[1:33])
		return priv, true, nil

	default:
		return priv, false, makeErrorf(ErrWIFInvalidVersion, "WIF must start with '5', 'K' or 'L', got %q", wif[0])
	}
}

// EncodePrivateKey is the inverse of DecodePrivateKey: it Base58Check-
// encodes priv with the mainnet private key version byte, appending
// the 0x01 compression marker when compressed is set.
func EncodePrivateKey(compressed bool, priv *bigint.Int) string {
	payloadLen := 33
	if compressed {
		payloadLen = 34
	}

	buf := make([]byte, payloadLen+4)
	buf[0] = wifVersion
	b := priv.Bytes32()
	copy(buf[1:33], b[:])
	if compressed {
		buf[33] = 0x01
	}

	sum := doubleSHA256(buf[:payloadLen])
	copy(buf[payloadLen:], sum[:4])

	return base58.Bitcoin.Encode(buf)
}
