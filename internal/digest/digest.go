// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest collects the handful of Blake2b hash shapes the core
// protocol substrate needs: the 32-byte digest used for content
// addressing, the 20-byte digest used for address payloads, and the
// 4-byte digest used for address checksums.
package digest

import (
	"golang.org/x/crypto/blake2b"
)

// Size256 is the digest length, in bytes, used for CID content hashes.
const Size256 = 32

// Size160 is the digest length, in bytes, used for Secp256k1/Actor
// address payloads.
const Size160 = 20

// Size32 is the digest length, in bytes, used for address checksums.
const Size32 = 4

// Sum256 returns the unkeyed Blake2b-256 digest of data.
func Sum256(data []byte) [Size256]byte {
	return blake2b.Sum256(data)
}

// Sum160 returns the unkeyed Blake2b digest of data truncated to 20
// bytes, as used for address payload hashing.
func Sum160(data []byte) []byte {
	h, err := blake2b.New(Size160, nil)
	if err != nil {
		// blake2b.New only fails for out-of-range sizes or oversized
		// keys; Size160 and a nil key are always valid.
		panic(err)
	}
	h.Write(data)
	return h.Sum(nil)
}

// Sum32 returns the unkeyed Blake2b digest of data truncated to 4
// bytes, as used for address checksums.
func Sum32(data []byte) []byte {
	h, err := blake2b.New(Size32, nil)
	if err != nil {
		panic(err)
	}
	h.Write(data)
	return h.Sum(nil)
}
