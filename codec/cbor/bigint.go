// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cbor

import (
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// BigInt wraps math/big.Int so it marshals as the byte-string encoding
// Filecoin's canonical CBOR uses for big-int fields (parent weight,
// message value, gas price, gas limit, gas used): a sign byte (0x00
// positive/zero, 0x01 negative) followed by the big-endian magnitude.
// An empty byte string denotes zero.
type BigInt struct {
	big.Int
}

// NewBigInt wraps an int64 as a BigInt.
func NewBigInt(v int64) BigInt {
	var b BigInt
	b.Int.SetInt64(v)
	return b
}

func (b BigInt) MarshalCBOR() ([]byte, error) {
	if b.Int.Sign() == 0 {
		return cbor.Marshal([]byte{})
	}
	magnitude := b.Int.Bytes()
	raw := make([]byte, 0, len(magnitude)+1)
	if b.Int.Sign() < 0 {
		raw = append(raw, 0x01)
	} else {
		raw = append(raw, 0x00)
	}
	raw = append(raw, magnitude...)
	return cbor.Marshal(raw)
}

func (b *BigInt) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		b.Int.SetInt64(0)
		return nil
	}
	b.Int.SetBytes(raw[1:])
	if raw[0] == 0x01 {
		b.Int.Neg(&b.Int)
	}
	return nil
}

// String renders the decimal form big-ints use on the JSON surface.
func (b BigInt) String() string {
	return b.Int.String()
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.Int.String() + `"`), nil
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		b.Int.SetInt64(0)
		return nil
	}
	_, ok := b.Int.SetString(s, 10)
	if !ok {
		return &parseError{s}
	}
	return nil
}

type parseError struct{ s string }

func (e *parseError) Error() string { return "cbor: invalid big-int decimal string " + e.s }
