// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toole-brendan/filecore/address"
	filecorecbor "github.com/toole-brendan/filecore/codec/cbor"
	fcrypto "github.com/toole-brendan/filecore/crypto"
)

func fixtureUnsignedMessage(t *testing.T) *UnsignedMessage {
	t.Helper()
	to, err := address.NewIDAddress(100)
	require.NoError(t, err)
	from, err := address.NewIDAddress(101)
	require.NoError(t, err)

	return &UnsignedMessage{
		To:       to,
		From:     from,
		Nonce:    1,
		Value:    filecorecbor.NewBigInt(1000),
		GasPrice: filecorecbor.NewBigInt(2),
		GasLimit: filecorecbor.NewBigInt(500),
		Method:   0,
		Params:   nil,
	}
}

func TestRequiredFunds(t *testing.T) {
	m := fixtureUnsignedMessage(t)
	want := filecorecbor.NewBigInt(1000 + 2*500)
	got := m.RequiredFunds()
	require.Equal(t, 0, want.Int.Cmp(&got.Int))
}

func TestUnsignedMessageCidChangesWithField(t *testing.T) {
	m1 := fixtureUnsignedMessage(t)
	m2 := fixtureUnsignedMessage(t)
	m2.Nonce = 2

	c1, err := m1.Cid()
	require.NoError(t, err)
	c2, err := m2.Cid()
	require.NoError(t, err)
	require.False(t, c1.Equals(c2))
}

func TestSignedMessageCidDispatch(t *testing.T) {
	m := fixtureUnsignedMessage(t)
	unsignedCid, err := m.Cid()
	require.NoError(t, err)

	blsSigned := &SignedMessage{
		Message:   *m,
		Signature: fcrypto.Signature{Type: fcrypto.BLS, Data: make([]byte, 96)},
	}
	blsCid, err := blsSigned.Cid()
	require.NoError(t, err)
	require.True(t, unsignedCid.Equals(blsCid))

	secpSigned := &SignedMessage{
		Message:   *m,
		Signature: fcrypto.Signature{Type: fcrypto.Secp256k1, Data: make([]byte, 65)},
	}
	secpCid, err := secpSigned.Cid()
	require.NoError(t, err)
	require.False(t, unsignedCid.Equals(secpCid))
}
