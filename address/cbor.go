// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/fxamacker/cbor/v2"
)

// MarshalCBOR encodes the address as the single CBOR byte-string
// tag||payload, with no network byte, per spec §4.1/§6.
func (a Address) MarshalCBOR() ([]byte, error) {
	if a.Empty() {
		return cbor.Marshal([]byte(nil))
	}
	return cbor.Marshal(a.Bytes())
}

// UnmarshalCBOR decodes an address previously written by MarshalCBOR.
func (a *Address) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		*a = Undef
		return nil
	}
	parsed, err := FromBytes(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
