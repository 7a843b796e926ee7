// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cbor holds the canonical CBOR helpers shared by the chain
// data model: CID tag-42 wrapping and big.Int byte-string framing, per
// spec §6 ("Canonical CBOR").
//
// Grounded on the venus conformance driver's direct use of
// github.com/ipfs/go-cid (other_examples) for CID plumbing, and on
// fxamacker/cbor/v2's RawTag/Tag types for the tag-42 wrapper.
package cbor

import (
	"errors"

	"github.com/fxamacker/cbor/v2"
	"github.com/ipfs/go-cid"
)

// cidTagNumber is the CBOR major-type-6 tag number IPLD reserves for
// wrapped CIDs.
const cidTagNumber = 42

// EncodeCid wraps a CID as CBOR tag 42 over a byte string whose first
// byte is the multibase-identity marker (0x00) followed by the CID's
// binary form, per spec §6.
func EncodeCid(c cid.Cid) ([]byte, error) {
	if !c.Defined() {
		return nil, errors.New("cbor: cannot encode an undefined CID")
	}
	raw := append([]byte{0x00}, c.Bytes()...)
	return cbor.Marshal(cbor.Tag{Number: cidTagNumber, Content: raw})
}

// DecodeCid reverses EncodeCid.
func DecodeCid(data []byte) (cid.Cid, error) {
	var tag cbor.Tag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return cid.Undef, err
	}
	if tag.Number != cidTagNumber {
		return cid.Undef, errors.New("cbor: expected tag 42 for a CID")
	}
	raw, ok := tag.Content.([]byte)
	if !ok {
		return cid.Undef, errors.New("cbor: tag 42 content must be a byte string")
	}
	if len(raw) == 0 || raw[0] != 0x00 {
		return cid.Undef, errors.New("cbor: CID byte string missing multibase-identity prefix")
	}
	return cid.Cast(raw[1:])
}

// CidRef is a CID that marshals/unmarshals through EncodeCid/DecodeCid,
// for embedding directly as a struct field inside a `cbor:",toarray"`
// tuple.
type CidRef struct {
	cid.Cid
}

func (c CidRef) MarshalCBOR() ([]byte, error) {
	return EncodeCid(c.Cid)
}

func (c *CidRef) UnmarshalCBOR(data []byte) error {
	decoded, err := DecodeCid(data)
	if err != nil {
		return err
	}
	c.Cid = decoded
	return nil
}
