// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/ipfs/go-cid"

	"github.com/toole-brendan/filecore/address"
	filecorecbor "github.com/toole-brendan/filecore/codec/cbor"
	fcrypto "github.com/toole-brendan/filecore/crypto"
)

// UnsignedMessage is the 8-element tuple struct spec §3/§4.5 define:
// to, from, nonce, value, gas price, gas limit, method, params.
type UnsignedMessage struct {
	_        struct{} `cbor:",toarray"`
	To       address.Address
	From     address.Address
	Nonce    uint64
	Value    filecorecbor.BigInt
	GasPrice filecorecbor.BigInt
	GasLimit filecorecbor.BigInt
	Method   uint64
	Params   []byte
}

// RequiredFunds returns value + gas_price * gas_limit.
func (m *UnsignedMessage) RequiredFunds() filecorecbor.BigInt {
	var out filecorecbor.BigInt
	out.Int.Mul(&m.GasPrice.Int, &m.GasLimit.Int)
	out.Int.Add(&out.Int, &m.Value.Int)
	return out
}

// Cid computes Blake2b-256 of the message's canonical CBOR encoding,
// wrapped as a CIDv1 DagCBOR content identifier.
func (m *UnsignedMessage) Cid() (cid.Cid, error) {
	encoded, err := cbor.Marshal(m)
	if err != nil {
		return cid.Undef, err
	}
	return filecorecbor.CidFromCBOR(encoded)
}

// SignedMessage pairs an UnsignedMessage with the Signature over it.
type SignedMessage struct {
	_         struct{} `cbor:",toarray"`
	Message   UnsignedMessage
	Signature fcrypto.Signature
}

// Cid dispatches on the carried signature's type per spec §4.5: BLS
// signatures are aggregated at the block level and must not influence
// message identity, so a BLS-signed message's CID is its inner
// UnsignedMessage's CID; a Secp256k1-signed message's CID is the
// signed pair's own CID. The two cases must not be unified.
func (m *SignedMessage) Cid() (cid.Cid, error) {
	if m.Signature.Type == fcrypto.BLS {
		return m.Message.Cid()
	}
	encoded, err := cbor.Marshal(m)
	if err != nil {
		return cid.Undef, err
	}
	return filecorecbor.CidFromCBOR(encoded)
}
