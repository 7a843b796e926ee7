// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestSignatureCBORVector(t *testing.T) {
	sig := Signature{Type: BLS, Data: []byte("boo! im a signature")}
	got, err := sig.MarshalCBOR()
	require.NoError(t, err)

	want := mustHex(t, "5402626F6F2120696D2061207369676E6174757265")
	require.Equal(t, want, got)

	var decoded Signature
	require.NoError(t, decoded.UnmarshalCBOR(got))
	require.True(t, sig.Equal(decoded))
}

func TestSignatureEncodedTooLong(t *testing.T) {
	sig := Signature{Type: BLS, Data: make([]byte, maxEncodedLen)}
	_, err := sig.MarshalCBOR()
	require.Error(t, err)
	var typedErr *Error
	require.ErrorAs(t, err, &typedErr)
	require.Equal(t, KindEncodedTooLong, typedErr.Kind)
}

func TestSignatureJSONRoundTrip(t *testing.T) {
	for _, typ := range []Type{Secp256k1, BLS} {
		sig := Signature{Type: typ, Data: []byte{1, 2, 3, 4}}
		data, err := sig.MarshalJSON()
		require.NoError(t, err)

		var decoded Signature
		require.NoError(t, decoded.UnmarshalJSON(data))
		require.True(t, sig.Equal(decoded))
	}
}

func TestSignatureUnknownType(t *testing.T) {
	_, err := Sign(Type(99), nil, nil)
	require.Error(t, err)
	var typedErr *Error
	require.ErrorAs(t, err, &typedErr)
	require.Equal(t, KindUnknownSignatureType, typedErr.Kind)
}

func TestSignatureCBORRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		typ := Type(rapid.SampledFrom([]byte{byte(Secp256k1), byte(BLS)}).Draw(rt, "type"))
		data := rapid.SliceOfN(rapid.Byte(), 0, 90).Draw(rt, "data")
		sig := Signature{Type: typ, Data: data}

		encoded, err := sig.MarshalCBOR()
		require.NoError(rt, err)

		var decoded Signature
		require.NoError(rt, decoded.UnmarshalCBOR(encoded))
		require.True(rt, sig.Equal(decoded))
	})
}
