// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// BeaconEntry is one randomness-beacon round, grounded on
// original_source's primitives/block/src/beacon_entry.rs: a 3-element
// CBOR tuple of (round, data, prev_round). It is not part of
// BlockHeader's own tuple (see EPostProof), but stands as its own
// CBOR/JSON type per spec.md §3.
type BeaconEntry struct {
	_         struct{} `cbor:",toarray"`
	Round     uint64
	Data      []byte
	PrevRound uint64
}
