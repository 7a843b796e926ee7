// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import "encoding/json"

// jsonSignature mirrors the lotus-style JSON rendering of a Signature:
// a named type string alongside base64 data, rather than the raw
// CBOR byte-string form.
type jsonSignature struct {
	Type string `json:"Type"`
	Data []byte `json:"Data"`
}

// MarshalJSON renders the signature as {"Type": "secp256k1"|"bls",
// "Data": base64}.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSignature{Type: s.Type.String(), Data: s.Data})
}

// UnmarshalJSON parses the form produced by MarshalJSON.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var js jsonSignature
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	switch js.Type {
	case "secp256k1":
		s.Type = Secp256k1
	case "bls":
		s.Type = BLS
	default:
		return newUnknownSignatureTypeError(0)
	}
	s.Data = js.Data
	return nil
}
