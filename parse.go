// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
	"strings"

	"github.com/vaultkey/secp256k1/bigint"
	"github.com/vaultkey/secp256k1/field"
)

// ParsePublicKeyHex decodes a hex-encoded public key in compressed
// (33-byte, prefix 0x02/0x03) or uncompressed (65-byte, prefix 0x04)
// form and reports whether it was compressed. It returns an error
// instead of exiting the process on malformed input.
func ParsePublicKeyHex(str string) (Point, bool, error) {
	var pt Point
	if len(str) < 2 {
		return pt, false, makeError(ErrPubKeyInvalidLen, "public key hex too short")
	}

	raw, err := hex.DecodeString(str)
	if err != nil {
		return pt, false, makeErrorf(ErrPubKeyInvalidFormat, "public key hex: %v", err)
	}

	var compressed bool
	switch raw[0] {
	case 0x02, 0x03:
		if len(raw) != 33 {
			return pt, false, makeErrorf(ErrPubKeyInvalidLen, "compressed public key must be 33 bytes, got %d", len(raw))
		}
		pt.X.SetBytes32(raw[1:33])
		if pt.X.CmpUnsigned(&P) >= 0 {
			return pt, false, makeError(ErrPubKeyXTooBig, "public key x coordinate exceeds the field prime")
		}
		pt.Y = GetY(&pt.X, raw[0] == 0x02)
		compressed = true
	case 0x04:
		if len(raw) != 65 {
			return pt, false, makeErrorf(ErrPubKeyInvalidLen, "uncompressed public key must be 65 bytes, got %d", len(raw))
		}
		pt.X.SetBytes32(raw[1:33])
		pt.Y.SetBytes32(raw[33:65])
		if pt.X.CmpUnsigned(&P) >= 0 {
			return pt, false, makeError(ErrPubKeyXTooBig, "public key x coordinate exceeds the field prime")
		}
		if pt.Y.CmpUnsigned(&P) >= 0 {
			return pt, false, makeError(ErrPubKeyYTooBig, "public key y coordinate exceeds the field prime")
		}
		compressed = false
	default:
		return pt, false, makeErrorf(ErrPubKeyInvalidFormat, "unexpected public key prefix 0x%02x (want 02, 03 or 04)", raw[0])
	}

	pt.Z = bigint.One()
	if !EC(&pt) {
		return pt, compressed, makeError(ErrPubKeyNotOnCurve, "public key does not lie on the curve")
	}
	return pt, compressed, nil
}

// GetPublicKey serializes pubKey as 33 (compressed) or 65
// (uncompressed) bytes.
func GetPublicKey(compressed bool, pubKey *Point) []byte {
	x := pubKey.X.Bytes32()
	if !compressed {
		y := pubKey.Y.Bytes32()
		out := make([]byte, 65)
		out[0] = 0x04
		copy(out[1:33], x[:])
		copy(out[33:65], y[:])
		return out
	}

	out := make([]byte, 33)
	if pubKey.Y.IsEven() {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	copy(out[1:33], x[:])
	return out
}

// GetPublicKeyHex is GetPublicKey rendered as upper-case hex.
func GetPublicKeyHex(compressed bool, pubKey *Point) string {
	return strings.ToUpper(hex.EncodeToString(GetPublicKey(compressed, pubKey)))
}

// GetY returns a y coordinate with x³+7 as its square, choosing the
// root whose parity matches isEven.
func GetY(x *bigint.Int, isEven bool) bigint.Int {
	s := field.ModSquareK1(x)
	p := field.ModMulK1(&s, x)
	seven := bigint.FromUint64(7)
	p = field.ModAddK1(&p, &seven)

	y := fld.ModSqrt(&p)
	if y.IsEven() != isEven {
		y = field.ModNegK1(&y)
	}
	return y
}

// EC reports whether p satisfies y² = x³ + 7 (mod P), i.e. lies on the
// curve. It does not check that p.Z == 1; callers with a projective
// point must Reduce first.
func EC(p *Point) bool {
	s := field.ModSquareK1(&p.X)
	rhs := field.ModMulK1(&s, &p.X)
	seven := bigint.FromUint64(7)
	rhs = field.ModAddK1(&rhs, &seven)

	lhs := field.ModMulK1(&p.Y, &p.Y)
	diff := field.ModSubK1(&lhs, &rhs)
	return diff.IsZero()
}
