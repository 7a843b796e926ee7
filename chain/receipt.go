// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import filecorecbor "github.com/toole-brendan/filecore/codec/cbor"

// MessageReceipt is the 3-element tuple struct spec §3/§4.5 define:
// exit code, return bytes, gas used.
type MessageReceipt struct {
	_        struct{} `cbor:",toarray"`
	ExitCode ExitCode
	Return   []byte
	GasUsed  filecorecbor.BigInt
}
