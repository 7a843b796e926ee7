// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import "github.com/fxamacker/cbor/v2"

// MarshalCBOR encodes a Signature as a single CBOR byte string: the
// type tag byte followed immediately by the raw signature bytes, per
// spec §4.2. This mirrors the address package's custom Marshaler hook
// rather than letting cbor encode the struct's fields independently.
func (s Signature) MarshalCBOR() ([]byte, error) {
	raw := make([]byte, 0, len(s.Data)+1)
	raw = append(raw, byte(s.Type))
	raw = append(raw, s.Data...)
	if len(raw) > maxEncodedLen {
		return nil, newEncodedTooLongError(len(raw))
	}
	return cbor.Marshal(raw)
}

// UnmarshalCBOR decodes a Signature from the byte-string form produced
// by MarshalCBOR.
func (s *Signature) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) > maxEncodedLen {
		return newEncodedTooLongError(len(raw))
	}
	if len(raw) == 0 {
		return newUnknownSignatureTypeError(0)
	}
	s.Type = Type(raw[0])
	s.Data = append([]byte(nil), raw[1:]...)
	return nil
}
