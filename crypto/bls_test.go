// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBLSVerifyRejectsWrongLengthSignature(t *testing.T) {
	_, err := blsVerify([]byte{1, 2, 3}, []byte("msg"), make([]byte, 48))
	require.Error(t, err)
}

func TestAggregateSignaturesRejectsEmptyInput(t *testing.T) {
	_, err := AggregateSignatures(nil)
	require.Error(t, err)
}

func TestVerifyAggregateRejectsMismatchedCounts(t *testing.T) {
	_, err := VerifyAggregate(make([]byte, blsDataLen), [][]byte{{1}}, nil)
	require.Error(t, err)
}
