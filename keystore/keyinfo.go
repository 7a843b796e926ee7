// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keystore implements the abstract named key-value store spec
// §4.9 defines (list/get/put/delete over string -> KeyInfo), plus two
// concrete implementors: an in-memory reference store and a
// goleveldb-backed one.
//
// Grounded on spec §4.9/§6 and original_source's
// wallet/src/keystore/key_info.rs (KeyInfo CBOR/JSON shape) and
// wallet/src/keystore.rs (the KeyStore contract), with the storage
// pattern itself modeled on the teacher's covenants/vault package
// (named-policy structs stored and retrieved by key).
package keystore

import (
	"encoding/base64"
	"encoding/json"

	"github.com/fxamacker/cbor/v2"

	"github.com/toole-brendan/filecore/crypto"
)

// KeyInfo is the on-disk/serialized form of a private key: a type tag
// plus the raw key bytes.
type KeyInfo struct {
	Type       crypto.Type
	PrivateKey []byte
}

// cborForm mirrors the CBOR tuple [type_byte, privkey_bytes] spec §3
// specifies for KeyInfo.
type cborForm struct {
	_          struct{} `cbor:",toarray"`
	Type       byte
	PrivateKey []byte
}

func (k KeyInfo) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(cborForm{Type: byte(k.Type), PrivateKey: k.PrivateKey})
}

func (k *KeyInfo) UnmarshalCBOR(data []byte) error {
	var form cborForm
	if err := cbor.Unmarshal(data, &form); err != nil {
		return err
	}
	t := crypto.Type(form.Type)
	if t != crypto.Secp256k1 && t != crypto.BLS {
		return newUnknownKeyTypeError(form.Type)
	}
	k.Type = t
	k.PrivateKey = form.PrivateKey
	return nil
}

// jsonForm mirrors the JSON shape spec §6 specifies for KeyInfo:
// {"Type": "...", "PrivateKey": base64}.
type jsonForm struct {
	Type       string `json:"Type"`
	PrivateKey string `json:"PrivateKey"`
}

func (k KeyInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonForm{
		Type:       k.Type.String(),
		PrivateKey: base64.StdEncoding.EncodeToString(k.PrivateKey),
	})
}

func (k *KeyInfo) UnmarshalJSON(data []byte) error {
	var form jsonForm
	if err := json.Unmarshal(data, &form); err != nil {
		return err
	}
	switch form.Type {
	case "secp256k1":
		k.Type = crypto.Secp256k1
	case "bls":
		k.Type = crypto.BLS
	default:
		return newUnknownKeyTypeError(0)
	}
	raw, err := base64.StdEncoding.DecodeString(form.PrivateKey)
	if err != nil {
		return err
	}
	k.PrivateKey = raw
	return nil
}
