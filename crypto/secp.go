// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/toole-brendan/filecore/address"
	"github.com/toole-brendan/filecore/internal/digest"
)

var errSignatureMismatch = errors.New("signature does not verify")

// secp256k1Sign hashes msg with Blake2b-256 and produces a compact,
// recoverable ECDSA signature: 64 bytes of (r, s) followed by a
// 1-byte recovery id, per spec §4.2.
func secp256k1Sign(privkeyBytes, msg []byte) ([]byte, error) {
	priv, _ := btcec.PrivKeyFromBytes(privkeyBytes)
	h := digest.Sum256(msg)

	// btcec's compact format is [recovery-header, r(32), s(32)]; the
	// header byte encodes 27+recid(+4 if compressed). We want
	// [r(32), s(32), recid] per spec, so the header byte is moved to
	// the end and normalized back down to a plain 0-3 recovery id.
	compact := ecdsa.SignCompact(priv, h[:], false)
	header := compact[0]
	recID := header - 27
	if recID >= 4 {
		recID -= 4
	}

	out := make([]byte, secp256k1DataLen)
	copy(out[:64], compact[1:])
	out[64] = recID
	return out, nil
}

// secp256k1VerifyRaw verifies a signature that has already been
// produced; the pubkey is compared against the one recovered from the
// signature bytes (compact ECDSA carries no separate pubkey field).
func secp256k1VerifyRaw(pubkey, msg, sig []byte) (bool, error) {
	if len(sig) != secp256k1DataLen {
		return false, errors.New("secp256k1 signature must be 65 bytes")
	}
	pub, err := btcec.ParsePubKey(pubkey)
	if err != nil {
		return false, err
	}
	h := digest.Sum256(msg)
	recovered, err := recoverCompressedOrUncompressed(sig, h[:])
	if err != nil {
		return false, err
	}
	return recovered.IsEqual(pub), nil
}

// secp256k1RecoverAddress recovers the signer's public key from sig
// and msg and derives the Secp256k1 address that key hashes to.
func secp256k1RecoverAddress(sig, msg []byte) (address.Address, error) {
	if len(sig) != secp256k1DataLen {
		return address.Undef, errors.New("secp256k1 signature must be 65 bytes")
	}
	h := digest.Sum256(msg)
	pub, err := recoverCompressedOrUncompressed(sig, h[:])
	if err != nil {
		return address.Undef, err
	}
	return address.NewSecp256k1Address(pub.SerializeUncompressed())
}

func recoverCompressedOrUncompressed(sig, hash []byte) (*btcec.PublicKey, error) {
	recID := sig[64]
	compact := make([]byte, 65)
	compact[0] = 27 + recID
	copy(compact[1:], sig[:64])
	pub, _, err := ecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, err
	}
	return pub, nil
}
