// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import "bytes"

// Ticket is a VRF output used for both leader election and
// intra-tipset ordering. Tickets are ordered by lexicographic byte
// comparison of their proof.
type Ticket struct {
	_        struct{} `cbor:",toarray"`
	VRFProof []byte
}

// Less reports whether t sorts before o under the ticket comparator:
// lexicographic byte comparison of the VRF proof.
func (t Ticket) Less(o Ticket) bool {
	return bytes.Compare(t.VRFProof, o.VRFProof) < 0
}

// Compare returns -1, 0, or 1 as t is less than, equal to, or greater
// than o, by VRF proof byte comparison.
func (t Ticket) Compare(o Ticket) int {
	return bytes.Compare(t.VRFProof, o.VRFProof)
}
