// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"

	"github.com/toole-brendan/filecore/address"
)

func TestSecp256k1SignVerifyRoundTrip(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	addr, err := address.NewSecp256k1Address(priv.PubKey().SerializeUncompressed())
	require.NoError(t, err)

	msg := []byte("filecore secp256k1 fixture message")
	sig, err := Sign(Secp256k1, priv.Serialize(), msg)
	require.NoError(t, err)
	require.Equal(t, Secp256k1, sig.Type)
	require.Len(t, sig.Data, secp256k1DataLen)

	require.NoError(t, sig.Verify(addr, msg))
}

func TestSecp256k1VerifyRejectsTamperedMessage(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	addr, err := address.NewSecp256k1Address(priv.PubKey().SerializeUncompressed())
	require.NoError(t, err)

	sig, err := Sign(Secp256k1, priv.Serialize(), []byte("original"))
	require.NoError(t, err)

	err = sig.Verify(addr, []byte("tampered"))
	require.Error(t, err)
}

func TestSecp256k1VerifyRejectsWrongAddressProtocol(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	idAddr, err := address.NewIDAddress(1000)
	require.NoError(t, err)

	sig, err := Sign(Secp256k1, priv.Serialize(), []byte("msg"))
	require.NoError(t, err)

	err = sig.Verify(idAddr, []byte("msg"))
	require.Error(t, err)
	var typedErr *Error
	require.ErrorAs(t, err, &typedErr)
	require.Equal(t, KindNotSameType, typedErr.Kind)
}
