// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitfield

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEmptyBitfieldRoundTrip(t *testing.T) {
	bf := New()
	encoded, err := bf.Encode()
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, uint64(0), decoded.Len())
}

func TestBasicSetRoundTrip(t *testing.T) {
	bf := New()
	for _, i := range []uint64{0, 1, 2, 5, 100, 101, 102, 103} {
		bf.Set(i)
	}
	encoded, err := bf.Encode()
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, uint64(8), decoded.Len())
	for _, i := range []uint64{0, 1, 2, 5, 100, 101, 102, 103} {
		require.True(t, decoded.Has(i))
	}
	require.False(t, decoded.Has(3))
	require.False(t, decoded.Has(99))
}

func TestUnsetRemovesMember(t *testing.T) {
	bf := New()
	bf.Set(10)
	bf.Set(11)
	bf.Unset(10)
	require.Equal(t, uint64(1), bf.Len())
	require.False(t, bf.Has(10))
	require.True(t, bf.Has(11))
}

func TestCanonicalEncodingIsDeterministic(t *testing.T) {
	a := New()
	a.Set(1)
	a.Set(2)
	a.Set(3)
	encodedA, err := a.Encode()
	require.NoError(t, err)

	b := New()
	b.Set(3)
	b.Set(1)
	b.Set(2)
	encodedB, err := b.Encode()
	require.NoError(t, err)

	require.Equal(t, encodedA, encodedB)
}

func TestMergeAndIntersect(t *testing.T) {
	a := New()
	a.Set(1)
	a.Set(2)
	a.Set(3)

	b := New()
	b.Set(2)
	b.Set(3)
	b.Set(4)

	union := Merge(a, b)
	require.Equal(t, uint64(4), union.Len())

	inter := Intersect(a, b)
	require.Equal(t, uint64(2), inter.Len())
	require.True(t, inter.Has(2))
	require.True(t, inter.Has(3))
}

func TestSlice(t *testing.T) {
	bf := New()
	for _, i := range []uint64{10, 20, 30, 40, 50} {
		bf.Set(i)
	}
	sliced, err := bf.Slice(1, 2)
	require.NoError(t, err)
	all, err := sliced.All(100)
	require.NoError(t, err)
	require.Equal(t, []uint64{20, 30}, all)
}

func TestRLEPlusRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.SliceOfN(rapid.Uint64Range(0, 5000), 0, 50).Draw(rt, "indices")
		unique := make(map[uint64]struct{}, len(raw))
		for _, i := range raw {
			unique[i] = struct{}{}
		}

		bf := New()
		for i := range unique {
			bf.Set(i)
		}
		encoded, err := bf.Encode()
		require.NoError(rt, err)

		decoded, err := Decode(encoded)
		require.NoError(rt, err)
		require.Equal(rt, uint64(len(unique)), decoded.Len())

		reencoded, err := decoded.Encode()
		require.NoError(rt, err)
		require.Equal(rt, encoded, reencoded)
	})
}
