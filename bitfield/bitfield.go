// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bitfield implements Filecoin's RLE+ bitfield codec: a
// compact, canonical run-length encoding of a sparse set of u64
// indices, used throughout sector bookkeeping (faults, terminations,
// partition membership, ...).
//
// Grounded on spec §4.8 and original_source's primitives/bitfield/src/lib.rs
// for the Slice/Copy/All helper views; the RLE+ block grammar itself
// comes verbatim from spec §4.8.
package bitfield

import "sort"

// maxEncodedSize bounds how large a single bitfield encoding may grow,
// guarding against pathological inputs turning into unbounded
// allocations during decode.
const maxEncodedSize = 32 << 20

// BitField is a logical set of u64 indices. A freshly decoded
// BitField's membership lives in its committed runs; Set/Unset record
// pending changes in two delta sets that are folded into the runs the
// next time the field is read or encoded.
type BitField struct {
	runs       []run
	setDelta   map[uint64]struct{}
	unsetDelta map[uint64]struct{}
}

// New returns an empty bitfield.
func New() *BitField {
	return &BitField{}
}

// Set records that i is a member of the set.
func (b *BitField) Set(i uint64) {
	b.ensureDeltas()
	delete(b.unsetDelta, i)
	b.setDelta[i] = struct{}{}
}

// Unset records that i is not a member of the set.
func (b *BitField) Unset(i uint64) {
	b.ensureDeltas()
	delete(b.setDelta, i)
	b.unsetDelta[i] = struct{}{}
}

func (b *BitField) ensureDeltas() {
	if b.setDelta == nil {
		b.setDelta = make(map[uint64]struct{})
	}
	if b.unsetDelta == nil {
		b.unsetDelta = make(map[uint64]struct{})
	}
}

// flatten folds the delta sets into runs, clears the deltas, and
// returns the resulting canonical run list.
func (b *BitField) flatten() []run {
	if len(b.setDelta) == 0 && len(b.unsetDelta) == 0 {
		return b.runs
	}

	members := make(map[uint64]struct{}, len(b.runs)*2)
	for _, r := range b.runs {
		for i := uint64(0); i < r.Len; i++ {
			members[r.Start+i] = struct{}{}
		}
	}
	for i := range b.setDelta {
		members[i] = struct{}{}
	}
	for i := range b.unsetDelta {
		delete(members, i)
	}

	sorted := make([]uint64, 0, len(members))
	for i := range members {
		sorted = append(sorted, i)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	b.runs = runsFromSortedIndices(sorted)
	b.setDelta = nil
	b.unsetDelta = nil
	return b.runs
}

func runsFromSortedIndices(sorted []uint64) []run {
	var runs []run
	for _, idx := range sorted {
		n := len(runs)
		if n > 0 && runs[n-1].Start+runs[n-1].Len == idx {
			runs[n-1].Len++
			continue
		}
		runs = append(runs, run{Start: idx, Len: 1})
	}
	return runs
}

// Encode renders the bitfield as its canonical RLE+ byte stream.
func (b *BitField) Encode() ([]byte, error) {
	setRuns := b.flatten()
	blocks, initialBit := alternatingBlocksFromSetRuns(setRuns)
	out := encodeBlocks(blocks, initialBit)
	if len(out) > maxEncodedSize {
		return nil, newMaxSizeExceedError(maxEncodedSize)
	}
	return out, nil
}

// Decode parses a previously encoded RLE+ stream.
func Decode(data []byte) (*BitField, error) {
	if len(data) > maxEncodedSize {
		return nil, newMaxSizeExceedError(maxEncodedSize)
	}
	blocks, initialBit, err := decodeRuns(data)
	if err != nil {
		return nil, err
	}
	return &BitField{runs: setRunsFromAlternatingBlocks(blocks, initialBit)}, nil
}

// Len returns the cardinality of the set.
func (b *BitField) Len() uint64 {
	var total uint64
	for _, r := range b.flatten() {
		total += r.Len
	}
	return total
}

// Has reports whether i is a member of the set.
func (b *BitField) Has(i uint64) bool {
	for _, r := range b.flatten() {
		if i >= r.Start && i < r.Start+r.Len {
			return true
		}
	}
	return false
}

// All returns every member index in ascending order, failing if the
// cardinality exceeds max.
func (b *BitField) All(max uint64) ([]uint64, error) {
	runs := b.flatten()
	var total uint64
	for _, r := range runs {
		total += r.Len
	}
	if total > max {
		return nil, newMaxSizeExceedError(max)
	}
	out := make([]uint64, 0, total)
	for _, r := range runs {
		for i := uint64(0); i < r.Len; i++ {
			out = append(out, r.Start+i)
		}
	}
	return out, nil
}

// Copy returns an independent bitfield with the same membership.
func (b *BitField) Copy() *BitField {
	runs := b.flatten()
	cp := make([]run, len(runs))
	copy(cp, runs)
	return &BitField{runs: cp}
}
