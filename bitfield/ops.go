// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitfield

import "sort"

// Merge returns the union of a and b.
func Merge(a, b *BitField) *BitField {
	out := New()
	for _, i := range unionIndices(a.flatten(), b.flatten()) {
		out.Set(i)
	}
	return out
}

// Intersect returns the indices present in both a and b.
func Intersect(a, b *BitField) *BitField {
	out := New()
	bSet := indexSet(b.flatten())
	for _, r := range a.flatten() {
		for i := r.Start; i < r.Start+r.Len; i++ {
			if _, ok := bSet[i]; ok {
				out.Set(i)
			}
		}
	}
	return out
}

func indexSet(runs []run) map[uint64]struct{} {
	set := make(map[uint64]struct{})
	for _, r := range runs {
		for i := r.Start; i < r.Start+r.Len; i++ {
			set[i] = struct{}{}
		}
	}
	return set
}

func unionIndices(a, b []run) []uint64 {
	set := indexSet(a)
	for i := range indexSet(b) {
		set[i] = struct{}{}
	}
	out := make([]uint64, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Slice returns a new bitfield containing the count set indices
// starting at the start-th set index (0-based), in ascending order.
func (b *BitField) Slice(start, count uint64) (*BitField, error) {
	all, err := b.All(maxEncodedSize)
	if err != nil {
		return nil, err
	}
	if start > uint64(len(all)) {
		return nil, newDataIndexFailureError()
	}
	end := start + count
	if end > uint64(len(all)) {
		end = uint64(len(all))
	}
	out := New()
	for _, i := range all[start:end] {
		out.Set(i)
	}
	return out, nil
}
