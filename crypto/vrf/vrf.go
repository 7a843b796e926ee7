// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vrf implements Filecoin's BLS-backed verifiable random
// function: tickets and election proofs are both VRF outputs over a
// domain-separated digest, signed with a miner's BLS worker key.
//
// Grounded on spec §4.3 and on the teacher's crypto/musig2 package for
// the shape of a small, self-contained crypto wrapper package.
package vrf

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/toole-brendan/filecore/address"
	"github.com/toole-brendan/filecore/crypto"
)

// Proof is a VRF output: a 96-byte BLS signature over a
// domain-separated digest.
type Proof []byte

// DomainSeparationTag names the purpose a VRF digest is computed for;
// it is mixed into the digest so the same randomness base never
// produces the same output for two different purposes.
type DomainSeparationTag int64

// Compute builds the VRF input digest for the given tag, round-entropy
// message and miner address, then signs it with the miner's BLS
// worker key.
//
// The digest is sha256(le_bytes(tag) || 0x00 || msg || 0x00 ||
// miner.Bytes()); miner must be an ID-protocol address.
func Compute(tag DomainSeparationTag, privkey []byte, msg []byte, miner address.Address) (Proof, error) {
	if miner.Protocol() != address.ID {
		return nil, errors.New("vrf: miner address must be ID protocol")
	}
	digest := inputDigest(tag, msg, miner)
	sig, err := crypto.Sign(crypto.BLS, privkey, digest)
	if err != nil {
		return nil, err
	}
	return Proof(sig.Data), nil
}

// Verify checks that proof is a valid VRF output for tag, msg and
// miner under the given BLS worker public key.
func Verify(tag DomainSeparationTag, pubkey []byte, msg []byte, miner address.Address, proof Proof) error {
	if miner.Protocol() != address.ID {
		return errors.New("vrf: miner address must be ID protocol")
	}
	digest := inputDigest(tag, msg, miner)
	return crypto.VerifyRaw(crypto.BLS, pubkey, digest, proof)
}

func inputDigest(tag DomainSeparationTag, msg []byte, miner address.Address) []byte {
	buf := make([]byte, 0, 8+1+len(msg)+1+len(miner.Bytes()))

	var tagBuf [8]byte
	binary.LittleEndian.PutUint64(tagBuf[:], uint64(tag))
	buf = append(buf, tagBuf[:]...)
	buf = append(buf, 0x00)
	buf = append(buf, msg...)
	buf = append(buf, 0x00)
	buf = append(buf, miner.Bytes()...)

	sum := sha256.Sum256(buf)
	return sum[:]
}
