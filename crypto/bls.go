// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import (
	"errors"

	bls "github.com/Giulio2002/bls"
)

// blsSign signs msg directly (no pre-hash on our side: BLS12-381
// signing hashes to the curve internally) and returns the 96-byte G1
// signature.
func blsSign(privkey, msg []byte) ([]byte, error) {
	sig, err := bls.Sign(privkey, msg)
	if err != nil {
		return nil, err
	}
	if len(sig) != blsDataLen {
		return nil, errors.New("bls: unexpected signature length")
	}
	return sig, nil
}

// blsVerify verifies a 96-byte BLS signature over msg against pubkey.
func blsVerify(sig, msg, pubkey []byte) (bool, error) {
	if len(sig) != blsDataLen {
		return false, errors.New("bls: signature must be 96 bytes")
	}
	return bls.Verify(sig, msg, pubkey)
}

// AggregateSignatures combines per-message BLS signatures into a
// single aggregate signature, as used by BlockHeader.BLSAggregate over
// the block's BLS-signed message CIDs.
func AggregateSignatures(sigs [][]byte) ([]byte, error) {
	if len(sigs) == 0 {
		return nil, errors.New("bls: no signatures to aggregate")
	}
	return bls.AggregateSignatures(sigs)
}

// VerifyAggregate verifies an aggregate BLS signature against the
// corresponding list of (pubkey, message) pairs.
func VerifyAggregate(aggregate []byte, pubkeys [][]byte, msgs [][]byte) (bool, error) {
	if len(pubkeys) != len(msgs) {
		return false, errors.New("bls: pubkey/message count mismatch")
	}
	return bls.VerifyAggregate(aggregate, pubkeys, msgs)
}
