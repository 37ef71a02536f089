// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// HashService is the hashing surface the address/WIF layer needs.
// It's an interface rather than free functions so tests (and callers
// with a hardware hashing backend) can substitute their own
// implementation; DefaultHashService is what every exported function
// in this package uses unless told otherwise.
type HashService interface {
	// SHA256 returns the single SHA-256 digest of data.
	SHA256(data []byte) [32]byte
	// RIPEMD160 returns the RIPEMD-160 digest of data.
	RIPEMD160(data []byte) [20]byte
}

type stdHashService struct{}

func (stdHashService) SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

func (stdHashService) RIPEMD160(data []byte) [20]byte {
	h := ripemd160.New()
	h.Write(data)
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DefaultHashService is the package-wide HashService used by
// GetHash160, doubleSHA256 (and so checksumOK) and Check. It needs no setup: SHA-256 and
// RIPEMD-160 have no process-wide state the way the field/curve
// constants do.
var DefaultHashService HashService = stdHashService{}

// doubleSHA256 returns SHA256(SHA256(data)), the digest Base58Check
// truncates to its first four bytes for a checksum.
func doubleSHA256(data []byte) [32]byte {
	first := DefaultHashService.SHA256(data)
	return DefaultHashService.SHA256(first[:])
}

// checksumOK reports whether want matches the first four bytes of
// doubleSHA256(payload).
func checksumOK(payload, want []byte) bool {
	sum := doubleSHA256(payload)
	return len(want) == 4 &&
		sum[0] == want[0] && sum[1] == want[1] && sum[2] == want[2] && sum[3] == want[3]
}
