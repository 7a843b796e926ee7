// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package crypto implements the Filecoin signature layer: a tagged
// Secp256k1/BLS signature representation with unified sign/verify
// entry points, plus the helpers address verification needs to derive
// a fresh address from a recovered key.
//
// Grounded on the teacher's crypto/musig2 package for the general shape
// (a small typed API wrapping btcec math) and on
// bobanetwork-erigon/cl/transition/impl/eth2/validation.go for the BLS
// call shape (github.com/Giulio2002/bls's Verify(sig, msg, pub)).
package crypto

import (
	"bytes"

	"github.com/toole-brendan/filecore/address"
)

// Type identifies which signature scheme produced a Signature's Data.
type Type byte

const (
	// Secp256k1 signatures are 65 bytes: a 64-byte compact ECDSA
	// signature followed by a 1-byte recovery id.
	Secp256k1 Type = 1
	// BLS signatures are 96-byte BLS12-381 G1 signatures.
	BLS Type = 2
)

func (t Type) String() string {
	switch t {
	case Secp256k1:
		return "secp256k1"
	case BLS:
		return "bls"
	default:
		return "unknown"
	}
}

const (
	secp256k1DataLen = 65
	blsDataLen       = 96

	// maxEncodedLen bounds the CBOR/wire form per spec §4.2.
	maxEncodedLen = 200
)

// Signature is a tagged, type-agnostic signature value: a scheme tag
// plus the scheme's raw signature bytes.
type Signature struct {
	Type Type
	Data []byte
}

// Equal reports whether two signatures carry the same type and bytes.
func (s Signature) Equal(o Signature) bool {
	return s.Type == o.Type && bytes.Equal(s.Data, o.Data)
}

// Sign produces a Signature over msg using privkey under the named
// scheme.
//
// Secp256k1 hashes msg with Blake2b-256 first and produces a
// recoverable compact signature; BLS signs the raw message directly
// (BLS hashes internally via its own hash-to-curve).
func Sign(t Type, privkey, msg []byte) (Signature, error) {
	switch t {
	case Secp256k1:
		data, err := secp256k1Sign(privkey, msg)
		if err != nil {
			return Signature{}, newSecp256k1Error(err)
		}
		return Signature{Type: Secp256k1, Data: data}, nil
	case BLS:
		data, err := blsSign(privkey, msg)
		if err != nil {
			return Signature{}, newBLSError(err)
		}
		return Signature{Type: BLS, Data: data}, nil
	default:
		return Signature{}, newUnknownSignatureTypeError(byte(t))
	}
}

// Verify checks sig over msg against addr. The signature's type must
// agree with addr's protocol (Secp256k1 signatures verify only against
// Secp256k1 addresses, BLS signatures only against BLS addresses).
//
// For Secp256k1, the public key is recovered from the signature and a
// fresh address is derived and compared to addr -- there is no
// separately-carried public key to check against. For BLS, the public
// key is taken directly from addr's payload.
func (s Signature) Verify(addr address.Address, msg []byte) error {
	switch s.Type {
	case Secp256k1:
		if addr.Protocol() != address.Secp256k1 {
			return newNotSameTypeError(s.Type, byte(addr.Protocol()))
		}
		recovered, err := secp256k1RecoverAddress(s.Data, msg)
		if err != nil {
			return newSecp256k1Error(err)
		}
		if recovered.Bytes() == nil || !bytes.Equal(recovered.Bytes(), addr.Bytes()) {
			return newSecp256k1Error(errSignatureMismatch)
		}
		return nil
	case BLS:
		if addr.Protocol() != address.BLS {
			return newNotSameTypeError(s.Type, byte(addr.Protocol()))
		}
		return VerifyRaw(BLS, addr.Payload(), msg, s.Data)
	default:
		return newUnknownSignatureTypeError(byte(s.Type))
	}
}

// VerifyRaw checks sig over msg against an explicitly supplied public
// key, bypassing address derivation.
func VerifyRaw(t Type, pubkey, msg, sig []byte) error {
	switch t {
	case Secp256k1:
		ok, err := secp256k1VerifyRaw(pubkey, msg, sig)
		if err != nil {
			return newSecp256k1Error(err)
		}
		if !ok {
			return newSecp256k1Error(errSignatureMismatch)
		}
		return nil
	case BLS:
		ok, err := blsVerify(sig, msg, pubkey)
		if err != nil {
			return newBLSError(err)
		}
		if !ok {
			return newBLSError(errSignatureMismatch)
		}
		return nil
	default:
		return newUnknownSignatureTypeError(byte(t))
	}
}
