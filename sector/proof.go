// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sector implements Filecoin's registered seal/PoSt proof
// enumeration and the sector/receipt data shapes that reference it.
//
// Grounded on spec §4.7 and original_source's chain/actor/src/abi/sector.rs
// for the full size-class x version-suffix enumeration, which spec §9
// ("Open question — RegisteredProof variants") says to preserve
// verbatim.
package sector

import (
	"strconv"

	"github.com/toole-brendan/filecore/piece"
)

// RegisteredSealProof enumerates the supported seal proof variants:
// the cross product of sector size and StackedDRG version.
type RegisteredSealProof int64

const (
	RegisteredSealProofStackedDRG2KiBV1   RegisteredSealProof = 0
	RegisteredSealProofStackedDRG8MiBV1   RegisteredSealProof = 1
	RegisteredSealProofStackedDRG512MiBV1 RegisteredSealProof = 2
	RegisteredSealProofStackedDRG32GiBV1  RegisteredSealProof = 3
	RegisteredSealProofStackedDRG64GiBV1  RegisteredSealProof = 4

	RegisteredSealProofStackedDRG2KiBV1_1   RegisteredSealProof = 5
	RegisteredSealProofStackedDRG8MiBV1_1   RegisteredSealProof = 6
	RegisteredSealProofStackedDRG512MiBV1_1 RegisteredSealProof = 7
	RegisteredSealProofStackedDRG32GiBV1_1  RegisteredSealProof = 8
	RegisteredSealProofStackedDRG64GiBV1_1  RegisteredSealProof = 9
)

// RegisteredPoStProof enumerates the supported Winning/Window PoSt
// proof variants, again one per sector size and version.
type RegisteredPoStProof int64

const (
	RegisteredPoStProofWinningStackedDRG2KiBV1   RegisteredPoStProof = 0
	RegisteredPoStProofWinningStackedDRG8MiBV1   RegisteredPoStProof = 1
	RegisteredPoStProofWinningStackedDRG512MiBV1 RegisteredPoStProof = 2
	RegisteredPoStProofWinningStackedDRG32GiBV1  RegisteredPoStProof = 3
	RegisteredPoStProofWinningStackedDRG64GiBV1  RegisteredPoStProof = 4

	RegisteredPoStProofWindowStackedDRG2KiBV1   RegisteredPoStProof = 5
	RegisteredPoStProofWindowStackedDRG8MiBV1   RegisteredPoStProof = 6
	RegisteredPoStProofWindowStackedDRG512MiBV1 RegisteredPoStProof = 7
	RegisteredPoStProofWindowStackedDRG32GiBV1  RegisteredPoStProof = 8
	RegisteredPoStProofWindowStackedDRG64GiBV1  RegisteredPoStProof = 9
)

type sealProofInfo struct {
	sectorSize        uint64
	winningPost       RegisteredPoStProof
	windowPost        RegisteredPoStProof
	windowPartitionFan int
}

// sealTable is the total mapping from seal proof to its sector size,
// sibling PoSt variants, and window-partition fan-out. Window
// partition counts are grounded in original_source's
// WINDOW_POST_SECTOR_COUNT table.
var sealTable = map[RegisteredSealProof]sealProofInfo{
	RegisteredSealProofStackedDRG2KiBV1: {
		sectorSize: 2 << 10, winningPost: RegisteredPoStProofWinningStackedDRG2KiBV1,
		windowPost: RegisteredPoStProofWindowStackedDRG2KiBV1, windowPartitionFan: 2,
	},
	RegisteredSealProofStackedDRG8MiBV1: {
		sectorSize: 8 << 20, winningPost: RegisteredPoStProofWinningStackedDRG8MiBV1,
		windowPost: RegisteredPoStProofWindowStackedDRG8MiBV1, windowPartitionFan: 2,
	},
	RegisteredSealProofStackedDRG512MiBV1: {
		sectorSize: 512 << 20, winningPost: RegisteredPoStProofWinningStackedDRG512MiBV1,
		windowPost: RegisteredPoStProofWindowStackedDRG512MiBV1, windowPartitionFan: 2,
	},
	RegisteredSealProofStackedDRG32GiBV1: {
		sectorSize: 32 << 30, winningPost: RegisteredPoStProofWinningStackedDRG32GiBV1,
		windowPost: RegisteredPoStProofWindowStackedDRG32GiBV1, windowPartitionFan: 2349,
	},
	RegisteredSealProofStackedDRG64GiBV1: {
		sectorSize: 64 << 30, winningPost: RegisteredPoStProofWinningStackedDRG64GiBV1,
		windowPost: RegisteredPoStProofWindowStackedDRG64GiBV1, windowPartitionFan: 2300,
	},
}

func init() {
	// The V1_1 variants share identical table entries with their V1
	// counterparts; the version suffix is preserved on the wire (spec §9)
	// but carries no mapping difference.
	sealTable[RegisteredSealProofStackedDRG2KiBV1_1] = sealTable[RegisteredSealProofStackedDRG2KiBV1]
	sealTable[RegisteredSealProofStackedDRG8MiBV1_1] = sealTable[RegisteredSealProofStackedDRG8MiBV1]
	sealTable[RegisteredSealProofStackedDRG512MiBV1_1] = sealTable[RegisteredSealProofStackedDRG512MiBV1]
	sealTable[RegisteredSealProofStackedDRG32GiBV1_1] = sealTable[RegisteredSealProofStackedDRG32GiBV1]
	sealTable[RegisteredSealProofStackedDRG64GiBV1_1] = sealTable[RegisteredSealProofStackedDRG64GiBV1]
}

// SectorSize returns s's sector size in bytes.
func (s RegisteredSealProof) SectorSize() (PaddedSectorSize, error) {
	info, ok := sealTable[s]
	if !ok {
		return 0, newUnknownSectorSizeError(int64(s))
	}
	return PaddedSectorSize(info.sectorSize), nil
}

// RegisteredWinningPoStProof returns s's Winning PoSt sibling.
func (s RegisteredSealProof) RegisteredWinningPoStProof() (RegisteredPoStProof, error) {
	info, ok := sealTable[s]
	if !ok {
		return 0, newUnknownSectorSizeError(int64(s))
	}
	return info.winningPost, nil
}

// RegisteredWindowPoStProof returns s's Window PoSt sibling.
func (s RegisteredSealProof) RegisteredWindowPoStProof() (RegisteredPoStProof, error) {
	info, ok := sealTable[s]
	if !ok {
		return 0, newUnknownSectorSizeError(int64(s))
	}
	return info.windowPost, nil
}

// WindowPoStPartitionSectors returns the number of sectors per
// partition for s's Window PoSt sibling.
func (s RegisteredSealProof) WindowPoStPartitionSectors() (uint64, error) {
	info, ok := sealTable[s]
	if !ok {
		return 0, newUnknownSectorSizeError(int64(s))
	}
	return uint64(info.windowPartitionFan), nil
}

// PaddedSectorSize is a sector's total padded capacity in bytes.
type PaddedSectorSize uint64

// ReadableSectorSize renders n using the largest binary unit (B, KiB,
// MiB, GiB, TiB, PiB, EiB) that keeps the integer part non-zero,
// truncating any remainder.
func ReadableSectorSize(n uint64) string {
	units := []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	unitIdx := 0
	value := n
	for value >= 1024 && unitIdx < len(units)-1 {
		value /= 1024
		unitIdx++
	}
	return strconv.FormatUint(value, 10) + " " + units[unitIdx]
}

// UnpaddedSectorSize is a convenience mapping used by callers that want
// the unpadded capacity of a sector (e.g. to bound how much user data
// a single piece can occupy).
func (s RegisteredSealProof) UnpaddedSectorSize() (piece.UnpaddedPieceSize, error) {
	size, err := s.SectorSize()
	if err != nil {
		return 0, err
	}
	return piece.PaddedPieceSize(size).Unpadded(), nil
}
