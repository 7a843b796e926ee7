// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"crypto/rand"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/toole-brendan/filecore/crypto"
	"github.com/toole-brendan/filecore/keystore"
)

// blsPrivateKeyLen is the size of a raw BLS12-381 scalar, fed directly
// to the bls library's Sign/PrivToPub without any hash-to-scalar step
// of our own.
const blsPrivateKeyLen = 32

// randomKeyInfo draws fresh private key material from the OS CSPRNG
// for the named scheme.
func randomKeyInfo(t crypto.Type) (keystore.KeyInfo, error) {
	switch t {
	case crypto.Secp256k1:
		priv, err := btcec.NewPrivateKey()
		if err != nil {
			return keystore.KeyInfo{}, keystore.NewKeyGenerationError(err)
		}
		return keystore.KeyInfo{Type: crypto.Secp256k1, PrivateKey: priv.Serialize()}, nil
	case crypto.BLS:
		buf := make([]byte, blsPrivateKeyLen)
		if _, err := rand.Read(buf); err != nil {
			return keystore.KeyInfo{}, keystore.NewKeyGenerationError(err)
		}
		return keystore.KeyInfo{Type: crypto.BLS, PrivateKey: buf}, nil
	default:
		return keystore.KeyInfo{}, keystore.NewUnknownKeyTypeError(byte(t))
	}
}
