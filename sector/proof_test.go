// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSectorSizeMapping(t *testing.T) {
	size, err := RegisteredSealProofStackedDRG32GiBV1.SectorSize()
	require.NoError(t, err)
	require.Equal(t, PaddedSectorSize(32<<30), size)
}

func TestWinningWindowPoStSiblings(t *testing.T) {
	winning, err := RegisteredSealProofStackedDRG2KiBV1.RegisteredWinningPoStProof()
	require.NoError(t, err)
	require.Equal(t, RegisteredPoStProofWinningStackedDRG2KiBV1, winning)

	window, err := RegisteredSealProofStackedDRG2KiBV1.RegisteredWindowPoStProof()
	require.NoError(t, err)
	require.Equal(t, RegisteredPoStProofWindowStackedDRG2KiBV1, window)
}

func TestV1_1VariantsPreserveSeparateIdentity(t *testing.T) {
	v1Size, err := RegisteredSealProofStackedDRG8MiBV1.SectorSize()
	require.NoError(t, err)
	v11Size, err := RegisteredSealProofStackedDRG8MiBV1_1.SectorSize()
	require.NoError(t, err)
	require.Equal(t, v1Size, v11Size)
	require.NotEqual(t, RegisteredSealProofStackedDRG8MiBV1, RegisteredSealProofStackedDRG8MiBV1_1)
}

func TestUnknownSectorSizeError(t *testing.T) {
	_, err := RegisteredSealProof(999).SectorSize()
	require.Error(t, err)
	var typedErr *Error
	require.ErrorAs(t, err, &typedErr)
	require.Equal(t, KindUnknownSectorSize, typedErr.Kind)
}

func TestReadableSectorSize(t *testing.T) {
	require.Equal(t, "2 KiB", ReadableSectorSize(2<<10))
	require.Equal(t, "32 GiB", ReadableSectorSize(32<<30))
	require.Equal(t, "512 MiB", ReadableSectorSize(512<<20))
}

func TestWindowPoStPartitionSectors(t *testing.T) {
	fan, err := RegisteredSealProofStackedDRG32GiBV1.WindowPoStPartitionSectors()
	require.NoError(t, err)
	require.Equal(t, uint64(2349), fan)
}
