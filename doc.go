// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements the elliptic curve arithmetic used by
Bitcoin-style keys and addresses over the curve y² = x³ + 7 (mod p),
p = 2²⁵⁶ − 2³² − 977.

It provides:

  - A Point type in affine and projective (Chudnovsky-style) form,
    with Add/Double/Add2 for the hot projective path and
    AddDirect/DoubleDirect/SubDirect for the affine path.
  - ComputePublicKey, a windowed scalar multiplication of the
    generator against a precomputed 256×32 table of its multiples.
  - WIF private key encoding/decoding and P2PKH/P2SH/Bech32 address
    derivation.
  - Check, a self-test against a handful of concrete key and address
    vectors.

The underlying fixed-width integer and modular arithmetic live in the
bigint and field subpackages; this package is the curve layer built on
top of them. It implements no signing, verification, or key-derivation
protocol — only the point and scalar primitives those protocols are
built from.
*/
package secp256k1
