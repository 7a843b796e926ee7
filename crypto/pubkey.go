// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import (
	bls "github.com/Giulio2002/bls"

	"github.com/btcsuite/btcd/btcec/v2"
)

// PublicKey derives the raw public key bytes for a private key under
// the named scheme: an uncompressed secp256k1 point, or a 48-byte
// BLS12-381 public key. Wallet key generation and import use this to
// recover the address a freshly-created or imported private key
// belongs to.
func PublicKey(t Type, privkey []byte) ([]byte, error) {
	switch t {
	case Secp256k1:
		priv, _ := btcec.PrivKeyFromBytes(privkey)
		return priv.PubKey().SerializeUncompressed(), nil
	case BLS:
		pub, err := bls.PrivToPub(privkey)
		if err != nil {
			return nil, newBLSError(err)
		}
		return pub, nil
	default:
		return nil, newUnknownSignatureTypeError(byte(t))
	}
}
