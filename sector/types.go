// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sector

import (
	filecorecbor "github.com/toole-brendan/filecore/codec/cbor"
)

// SectorID names a sector by the actor ID of its owning miner and a
// sector number unique within that miner.
type SectorID struct {
	Miner  uint64
	Number uint64
}

// SectorInfo names a sector's seal proof type, number, and sealed CID,
// the minimal shape PoSt verification needs to reference a sector.
type SectorInfo struct {
	_          struct{} `cbor:",toarray"`
	SealProof  RegisteredSealProof
	SectorNumber uint64
	SealedCID  filecorecbor.CidRef
}

// PoStProof pairs a registered PoSt proof type with its opaque proof
// bytes; the bytes themselves are verified by the FFI proof verifier,
// out of scope here.
type PoStProof struct {
	_              struct{} `cbor:",toarray"`
	PoStProof      RegisteredPoStProof
	ProofBytes     []byte
}

// SealVerifyInfo is the input to seal proof verification: pure data
// shape, the actual math is FFI/out of scope.
type SealVerifyInfo struct {
	_             struct{} `cbor:",toarray"`
	SealProof     RegisteredSealProof
	SectorID      SectorID
	DealIDs       []uint64
	Randomness    []byte
	InteractiveRandomness []byte
	Proof         []byte
	SealedCID     filecorecbor.CidRef
	UnsealedCID   filecorecbor.CidRef
}

// OnChainSealVerifyInfo is the on-chain-persisted subset of
// SealVerifyInfo (no randomness, which is derived at verification
// time from chain state).
type OnChainSealVerifyInfo struct {
	_           struct{} `cbor:",toarray"`
	SealedCID   filecorecbor.CidRef
	InteractiveEpoch int64
	SealProof   RegisteredSealProof
	Proof       []byte
	DealIDs     []uint64
	SectorNumber uint64
	SealRandEpoch int64
}

// WinningPoStVerifyInfo is the input to Winning PoSt verification.
type WinningPoStVerifyInfo struct {
	_          struct{} `cbor:",toarray"`
	Randomness []byte
	Proofs     []PoStProof
	ChallengedSectors []SectorInfo
	Prover     uint64
}

// WindowPoStVerifyInfo is the input to Window PoSt verification.
type WindowPoStVerifyInfo struct {
	_          struct{} `cbor:",toarray"`
	Randomness []byte
	Proofs     []PoStProof
	ChallengedSectors []SectorInfo
	Prover     uint64
}
