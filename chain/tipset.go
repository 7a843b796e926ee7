// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"bytes"
	"sort"

	"github.com/ipfs/go-cid"

	filecorecbor "github.com/toole-brendan/filecore/codec/cbor"
)

// TipSetKey is the ordered list of member CIDs identifying a tipset,
// grounded on original_source's primitives/tipset/src/key.rs; its
// concatenated-CID binary form is used as a datastore/cache key by
// collaborators outside this module's scope.
type TipSetKey struct {
	cids []cid.Cid
}

// NewTipSetKey builds a key from an already-ordered CID list.
func NewTipSetKey(cids []cid.Cid) TipSetKey {
	cp := make([]cid.Cid, len(cids))
	copy(cp, cids)
	return TipSetKey{cids: cp}
}

// Cids returns the key's member CIDs in order.
func (k TipSetKey) Cids() []cid.Cid {
	out := make([]cid.Cid, len(k.cids))
	copy(out, k.cids)
	return out
}

// Bytes renders the key as the concatenation of its member CIDs'
// binary forms.
func (k TipSetKey) Bytes() []byte {
	var buf bytes.Buffer
	for _, c := range k.cids {
		buf.Write(c.Bytes())
	}
	return buf.Bytes()
}

// Equals reports whether two keys name the same ordered CID list.
func (k TipSetKey) Equals(o TipSetKey) bool {
	if len(k.cids) != len(o.cids) {
		return false
	}
	for i := range k.cids {
		if !k.cids[i].Equals(o.cids[i]) {
			return false
		}
	}
	return true
}

// TipSetKeyFromBytes reverses Bytes, splitting the concatenated binary
// CID forms back into a key.
func TipSetKeyFromBytes(data []byte) (TipSetKey, error) {
	var cids []cid.Cid
	for len(data) > 0 {
		c, n, err := cid.CidFromBytes(data)
		if err != nil {
			return TipSetKey{}, err
		}
		cids = append(cids, c)
		data = data[n:]
	}
	return NewTipSetKey(cids), nil
}

// Tipset is a non-empty ordered list of block headers sharing height
// and parent set, sorted by (ticket, header-CID).
type Tipset struct {
	blocks []*BlockHeader
	cids   []cid.Cid
	key    TipSetKey
}

type tipsetMember struct {
	header *BlockHeader
	cid    cid.Cid
}

// NewTipset builds a Tipset from an unordered slice of block headers,
// sorting them by (ticket, CID) and validating height/parent
// agreement per spec §4.4.
func NewTipset(blocks []*BlockHeader) (*Tipset, error) {
	if len(blocks) == 0 {
		return nil, newEmptyBlocksError()
	}

	members := make([]tipsetMember, len(blocks))
	for i, b := range blocks {
		c, err := b.Cid()
		if err != nil {
			return nil, err
		}
		members[i] = tipsetMember{header: b, cid: c}
	}

	sort.Slice(members, func(i, j int) bool {
		if cmp := members[i].header.Ticket.Compare(members[j].header.Ticket); cmp != 0 {
			return cmp < 0
		}
		return bytes.Compare(members[i].cid.Bytes(), members[j].cid.Bytes()) < 0
	})

	height := members[0].header.Height
	parents := members[0].header.ParentCids()
	for _, m := range members[1:] {
		if m.header.Height != height {
			return nil, newMismatchingHeightError(uint64(height), uint64(m.header.Height))
		}
		if !sameParents(parents, m.header.ParentCids()) {
			return nil, newMismatchingParentError()
		}
	}

	sortedBlocks := make([]*BlockHeader, len(members))
	sortedCids := make([]cid.Cid, len(members))
	for i, m := range members {
		sortedBlocks[i] = m.header
		sortedCids[i] = m.cid
	}

	return &Tipset{
		blocks: sortedBlocks,
		cids:   sortedCids,
		key:    NewTipSetKey(sortedCids),
	}, nil
}

func sameParents(a, b []cid.Cid) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

// Key returns the tipset's ordered member-CID key.
func (t *Tipset) Key() TipSetKey { return t.key }

// Blocks returns the tipset's sorted member headers.
func (t *Tipset) Blocks() []*BlockHeader { return t.blocks }

// Height returns the tipset's (shared) height.
func (t *Tipset) Height() int64 { return t.blocks[0].Height }

// Parents returns the tipset's (shared) parent CID list.
func (t *Tipset) Parents() []cid.Cid { return t.blocks[0].ParentCids() }

// ParentState returns the tipset's (shared) parent state-root CID.
func (t *Tipset) ParentState() cid.Cid { return t.blocks[0].ParentStateRoot.Cid }

// ParentWeight returns the tipset's (shared) parent weight.
func (t *Tipset) ParentWeight() filecorecbor.BigInt { return t.blocks[0].ParentWeight }

// MinTicketBlock returns the member with the lexicographically
// smallest ticket (the first member, since the list is ticket-sorted).
func (t *Tipset) MinTicketBlock() *BlockHeader { return t.blocks[0] }

// MinTicket returns the smallest ticket among the tipset's members.
func (t *Tipset) MinTicket() Ticket { return t.blocks[0].Ticket }

// MinTimestamp returns the minimum timestamp among the tipset's
// members.
func (t *Tipset) MinTimestamp() uint64 {
	min := t.blocks[0].Timestamp
	for _, b := range t.blocks[1:] {
		if b.Timestamp < min {
			min = b.Timestamp
		}
	}
	return min
}

// Contains reports whether c names one of the tipset's member blocks.
func (t *Tipset) Contains(c cid.Cid) bool {
	for _, member := range t.cids {
		if member.Equals(c) {
			return true
		}
	}
	return false
}
