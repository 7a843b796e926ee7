// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	filecorecbor "github.com/toole-brendan/filecore/codec/cbor"
)

func TestMessageReceiptCBORRoundTrip(t *testing.T) {
	r := MessageReceipt{ExitCode: Ok, Return: []byte("ok"), GasUsed: filecorecbor.NewBigInt(42)}
	encoded, err := cbor.Marshal(r)
	require.NoError(t, err)

	var decoded MessageReceipt
	require.NoError(t, cbor.Unmarshal(encoded, &decoded))
	require.Equal(t, r.ExitCode, decoded.ExitCode)
	require.Equal(t, r.Return, decoded.Return)
}

func TestExitCodePredicates(t *testing.T) {
	require.True(t, Ok.IsSuccess())
	require.False(t, Ok.IsError())

	require.True(t, ErrNotFound.IsError())
	require.False(t, ErrNotFound.IsSuccess())
	require.False(t, ErrNotFound.IsSendFailure())

	require.True(t, SysErrorOutOfGas.IsSendFailure())
	require.True(t, ErrPlaceholder.IsError())
}
