// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package network holds the single piece of process-wide state the core
// protocol substrate depends on: which network (mainnet or testnet) the
// embedding binary is running against. It drives the single-character
// prefix used by the textual address form; it is never part of any
// binary encoding.
//
// Modeled on the closed, named-network style of chaincfg.Params and
// wire.BitcoinNet: a small fixed set of networks plus a package-level
// setter intended to be called exactly once at process startup.
package network

import "sync"

// Network identifies which Filecoin network addresses are displayed
// for.
type Network byte

const (
	// Mainnet is the production Filecoin network. Addresses display
	// with the 'f' prefix.
	Mainnet Network = iota
	// Testnet is any non-production Filecoin network. Addresses
	// display with the 't' prefix.
	Testnet
)

// String returns the single-character textual-address prefix for the
// network.
func (n Network) String() string {
	switch n {
	case Mainnet:
		return "f"
	case Testnet:
		return "t"
	default:
		return "?"
	}
}

var (
	mu      sync.RWMutex
	current = Testnet
)

// SetNetwork sets the process-wide network tag. Intended to be called
// once at startup by the embedding binary. Calling it again after any
// address has been parsed is undefined: previously parsed addresses
// are not retroactively revalidated.
func SetNetwork(n Network) {
	mu.Lock()
	defer mu.Unlock()
	current = n
}

// GetNetwork returns the process-wide network tag.
func GetNetwork() Network {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Prefix returns the single-character textual address prefix for the
// current process-wide network.
func Prefix() byte {
	return GetNetwork().String()[0]
}
