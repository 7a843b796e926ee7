// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cbor

import (
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"

	"github.com/toole-brendan/filecore/internal/digest"
)

// blake2b256MultihashCode is the multihash code for the 32-byte
// Blake2b-256 variant: the base BLAKE2B_MIN code offset by
// (length-1).
const blake2b256MultihashCode = mh.BLAKE2B_MIN + 31

// CidFromCBOR derives the CIDv1/DagCBOR/Blake2b-256 content identifier
// every core chain object uses: spec §6's "CID derivation" rule,
// applied uniformly to any already-canonical CBOR byte sequence.
func CidFromCBOR(canonical []byte) (cid.Cid, error) {
	sum := digest.Sum256(canonical)
	encoded, err := mh.Encode(sum[:], blake2b256MultihashCode)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.DagCBOR, mh.Multihash(encoded)), nil
}
