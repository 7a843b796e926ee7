// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address implements the Filecoin account identifier: a
// self-checksumming, network-tagged, multi-protocol address with
// canonical textual and binary encodings.
//
// Shaped after the teacher's addresses package (constructors + String +
// Parse + per-type validation behind a single exported type), adapted
// from Bitcoin's base58/bech32/taproot scheme to Filecoin's four-protocol,
// Blake2b/base32 scheme.
package address

import (
	"encoding/base32"
	"fmt"
	"strconv"

	"github.com/multiformats/go-varint"

	"github.com/toole-brendan/filecore/internal/digest"
	"github.com/toole-brendan/filecore/network"
)

// Protocol identifies which of the four address encodings an Address
// carries.
type Protocol byte

const (
	// ID addresses are an unsigned-varint-encoded actor ID. They have
	// no checksum: the varint IS the address.
	ID Protocol = iota
	// Secp256k1 addresses are the Blake2b-160 hash of an uncompressed
	// secp256k1 public key.
	Secp256k1
	// Actor addresses are the Blake2b-160 hash of arbitrary
	// actor-creation input data.
	Actor
	// BLS addresses carry a raw 48-byte BLS12-381 public key.
	BLS

	// Unknown marks the zero value of an unset Address.
	Unknown Protocol = 0xff
)

// String returns a short human-readable name for the protocol. Not
// used on the wire.
func (p Protocol) String() string {
	switch p {
	case ID:
		return "id"
	case Secp256k1:
		return "secp256k1"
	case Actor:
		return "actor"
	case BLS:
		return "bls"
	default:
		return "unknown"
	}
}

const (
	// maxTextLength is the maximum length, in bytes, of the textual
	// address form including the network prefix.
	maxTextLength = 86
	// minTextLength is the minimum length, in bytes, of the textual
	// address form.
	minTextLength = 3

	payloadSecp256k1 = digest.Size160
	payloadActor     = digest.Size160
	payloadBLS       = 48
	checksumLen      = digest.Size32
	maxIDDigits      = 20
)

// base32Encoding is RFC 4648's base32 alphabet, lowercased, without
// padding -- the encoding Filecoin addresses use for everything but the
// ID protocol.
var base32Encoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// Address is a Filecoin account identifier. The Go zero value
// Address{} is not Undef: its protocol is ID with an empty payload.
type Address struct {
	protocol Protocol
	payload  []byte
}

// Undef is the undefined Address, with protocol Unknown. It is not a
// valid address for any protocol: String returns "" and Bytes returns
// nil.
var Undef = Address{protocol: Unknown}

// Empty reports whether a is the undefined address Undef.
func (a Address) Empty() bool {
	return a.protocol == Unknown
}

// Protocol returns the address's protocol tag.
func (a Address) Protocol() Protocol {
	return a.protocol
}

// Payload returns the address's protocol-specific payload, not
// including the protocol tag byte.
func (a Address) Payload() []byte {
	return a.payload
}

// NewIDAddress builds a protocol-0 address from an actor ID.
func NewIDAddress(id uint64) (Address, error) {
	return Address{protocol: ID, payload: encodeID(id)}, nil
}

// NewSecp256k1Address builds a protocol-1 address from an uncompressed
// secp256k1 public key. The payload stored is Blake2b-160(pubkey), not
// the key itself.
func NewSecp256k1Address(pubkey []byte) (Address, error) {
	if len(pubkey) == 0 {
		return Undef, newInvalidPayloadError("secp256k1 public key must not be empty")
	}
	return Address{protocol: Secp256k1, payload: digest.Sum160(pubkey)}, nil
}

// NewActorAddress builds a protocol-2 address from arbitrary
// actor-creation input data. The payload stored is Blake2b-160(data).
func NewActorAddress(data []byte) (Address, error) {
	if len(data) == 0 {
		return Undef, newInvalidPayloadError("actor creation data must not be empty")
	}
	return Address{protocol: Actor, payload: digest.Sum160(data)}, nil
}

// NewBLSAddress builds a protocol-3 address from a raw 48-byte BLS
// public key.
func NewBLSAddress(pubkey []byte) (Address, error) {
	if len(pubkey) != payloadBLS {
		return Undef, newInvalidPayloadError(fmt.Sprintf("BLS public key must be %d bytes, got %d", payloadBLS, len(pubkey)))
	}
	cp := make([]byte, payloadBLS)
	copy(cp, pubkey)
	return Address{protocol: BLS, payload: cp}, nil
}

// AsID returns the actor ID encoded by an ID-protocol address and true;
// it returns 0 and false for any other protocol.
func (a Address) AsID() (uint64, bool) {
	if a.protocol != ID {
		return 0, false
	}
	id, _, err := decodeID(a.payload)
	if err != nil {
		return 0, false
	}
	return id, true
}

func encodeID(id uint64) []byte {
	return varint.ToUvarint(id)
}

func decodeID(payload []byte) (uint64, int, error) {
	id, n, err := varint.FromUvarint(payload)
	if err != nil {
		return 0, 0, newInvalidPayloadError("malformed ID varint: " + err.Error())
	}
	return id, n, nil
}

func payloadLenFor(p Protocol) (int, bool) {
	switch p {
	case Secp256k1:
		return payloadSecp256k1, true
	case Actor:
		return payloadActor, true
	case BLS:
		return payloadBLS, true
	default:
		return 0, false
	}
}

// FromBytes parses the binary address form: tag-byte followed by the
// protocol-specific payload, with no network byte.
func FromBytes(b []byte) (Address, error) {
	if len(b) == 0 {
		return Undef, newInvalidLengthError("address bytes must not be empty")
	}
	protocol := Protocol(b[0])
	payload := b[1:]
	switch protocol {
	case ID:
		id, n, err := decodeID(payload)
		if err != nil {
			return Undef, err
		}
		if n != len(payload) {
			return Undef, newInvalidLengthError("trailing bytes after ID varint")
		}
		return Address{protocol: ID, payload: encodeID(id)}, nil
	case Secp256k1, Actor, BLS:
		want, _ := payloadLenFor(protocol)
		if len(payload) != want {
			return Undef, newInvalidLengthError(fmt.Sprintf("%s payload must be %d bytes, got %d", protocol, want, len(payload)))
		}
		cp := make([]byte, len(payload))
		copy(cp, payload)
		return Address{protocol: protocol, payload: cp}, nil
	default:
		return Undef, newUnknownProtocolError(byte(protocol))
	}
}

// Bytes returns the binary address form: tag-byte followed by the
// protocol-specific payload. It carries no network byte.
func (a Address) Bytes() []byte {
	if a.Empty() {
		return nil
	}
	out := make([]byte, 0, 1+len(a.payload))
	out = append(out, byte(a.protocol))
	out = append(out, a.payload...)
	return out
}

// checksum returns Blake2b-32(tag || payload), the value embedded in
// the textual form of Secp256k1/Actor/BLS addresses.
func (a Address) checksum() []byte {
	return digest.Sum32(a.Bytes())
}

// ValidateChecksum reports whether sum is the correct checksum for the
// protocol tag and payload encoded in addrBytes (tag || payload).
func ValidateChecksum(addrBytes, sum []byte) bool {
	expect := digest.Sum32(addrBytes)
	if len(expect) != len(sum) {
		return false
	}
	for i := range expect {
		if expect[i] != sum[i] {
			return false
		}
	}
	return true
}

// String renders the address in its canonical textual form:
// <network-prefix><protocol-digit><body>. For ID addresses, body is
// decimal; for the others, body is lowercase unpadded base32 of
// payload||checksum.
func (a Address) String() string {
	if a.Empty() {
		return ""
	}
	prefix := network.Prefix()
	switch a.protocol {
	case ID:
		id, _ := a.AsID()
		return fmt.Sprintf("%c0%d", prefix, id)
	default:
		buf := make([]byte, 0, len(a.payload)+checksumLen)
		buf = append(buf, a.payload...)
		buf = append(buf, a.checksum()...)
		return fmt.Sprintf("%c%d%s", prefix, byte(a.protocol), base32Encoding.EncodeToString(buf))
	}
}

// Parse decodes the canonical textual address form. The network
// prefix must match the process-wide network tag set via
// network.SetNetwork, else parsing fails.
func Parse(s string) (Address, error) {
	if len(s) < minTextLength || len(s) > maxTextLength {
		return Undef, newInvalidLengthError(fmt.Sprintf("address text length must be in [%d, %d], got %d", minTextLength, maxTextLength, len(s)))
	}

	wantPrefix := network.Prefix()
	switch s[0] {
	case 'f', 't':
		if s[0] != wantPrefix {
			return Undef, newMismatchNetworkError(s[0], wantPrefix)
		}
	default:
		return Undef, newUnknownNetworkError(s[0])
	}

	protocolDigit := s[1]
	if protocolDigit < '0' || protocolDigit > '3' {
		return Undef, newUnknownProtocolError(protocolDigit)
	}
	protocol := Protocol(protocolDigit - '0')
	body := s[2:]

	if protocol == ID {
		id, err := strconv.ParseUint(body, 10, 64)
		if err != nil || len(body) > maxIDDigits {
			return Undef, newInvalidPayloadError("malformed ID address body")
		}
		return NewIDAddress(id)
	}

	raw, err := base32Encoding.DecodeString(body)
	if err != nil {
		return Undef, newBase32DecodeError(err)
	}
	// Reject bodies whose unused trailing bits are non-zero, so each
	// address has exactly one accepted textual form.
	if base32Encoding.EncodeToString(raw) != body {
		return Undef, newBase32DecodeError(fmt.Errorf("non-canonical encoding %q", body))
	}
	want, _ := payloadLenFor(protocol)
	if len(raw) != want+checksumLen {
		return Undef, newInvalidLengthError(fmt.Sprintf("%s textual payload has wrong length", protocol))
	}
	payload := raw[:want]
	sum := raw[want:]

	tagged := append([]byte{byte(protocol)}, payload...)
	if !ValidateChecksum(tagged, sum) {
		return Undef, newInvalidChecksumError()
	}

	cp := make([]byte, len(payload))
	copy(cp, payload)
	return Address{protocol: protocol, payload: cp}, nil
}
