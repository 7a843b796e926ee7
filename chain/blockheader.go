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

// BlockHeader is the tuple-ordered struct every implementation must
// hash identically: a strict 13-element CBOR array per spec §4.4,
// grounded on original_source's primitives/block/src/header.rs
// TupleBlockHeaderRef, whose single epost_proof field stands in for
// the election-proof/beacon-entries/winning-PoSt-proof concepts
// spec.md §3's prose names separately; see DESIGN.md for the
// resolution of that discrepancy.
type BlockHeader struct {
	_                     struct{} `cbor:",toarray"`
	Miner                 address.Address
	Ticket                Ticket
	EPostProof            EPostProof
	Parents               []filecorecbor.CidRef
	ParentWeight          filecorecbor.BigInt
	Height                int64
	ParentStateRoot       filecorecbor.CidRef
	ParentMessageReceipts filecorecbor.CidRef
	Messages              filecorecbor.CidRef
	BLSAggregate          *fcrypto.Signature
	Timestamp             uint64
	BlockSig              *fcrypto.Signature
	ForkSignaling         uint64
}

// Cid computes Blake2b-256 of the header's canonical CBOR encoding,
// wrapped as a CIDv1 DagCBOR content identifier.
func (h *BlockHeader) Cid() (cid.Cid, error) {
	encoded, err := cbor.Marshal(h)
	if err != nil {
		return cid.Undef, err
	}
	return filecorecbor.CidFromCBOR(encoded)
}

// ParentCids returns h's parent CID list as plain cid.Cid values.
func (h *BlockHeader) ParentCids() []cid.Cid {
	out := make([]cid.Cid, len(h.Parents))
	for i, p := range h.Parents {
		out[i] = p.Cid
	}
	return out
}
