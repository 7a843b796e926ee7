// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet implements the address-indexed key cache layered over
// a keystore.KeyStore, per spec §4.9. Its public surface is shared
// across threads behind a single reader/writer lock exactly as spec §5
// specifies: sign/find/list/get-default take the shared lock,
// import/generate/set-default take the exclusive lock, and no
// suspension point exists inside either.
package wallet

import (
	"sort"
	"sync"

	"github.com/decred/dcrd/lru"

	"github.com/toole-brendan/filecore/address"
	"github.com/toole-brendan/filecore/crypto"
	"github.com/toole-brendan/filecore/keystore"
)

const walletNamePrefix = "wallet-"

// defaultCacheSize bounds how many addresses the in-memory cache keeps
// warm before the least-recently-used one is evicted.
const defaultCacheSize = 256

// Wallet layers an address-indexed cache and a distinguished default
// entry over a KeyStore.
type Wallet struct {
	mu    sync.RWMutex
	ks    keystore.KeyStore
	cache *lru.Cache
	warm  map[string]keystore.KeyInfo
}

// New builds a Wallet over ks with the default cache size.
func New(ks keystore.KeyStore) *Wallet {
	return &Wallet{
		ks:    ks,
		cache: lru.New(defaultCacheSize),
		warm:  make(map[string]keystore.KeyInfo),
	}
}

func keyName(addr address.Address) string {
	return walletNamePrefix + addr.String()
}

// cacheGet returns the cached KeyInfo for addr, if the address is
// still tracked by the LRU set; a stale warm-map entry for an address
// the LRU has since evicted is treated as a miss.
func (w *Wallet) cacheGet(addr address.Address) (keystore.KeyInfo, bool) {
	name := keyName(addr)
	if !w.cache.Contains(name) {
		return keystore.KeyInfo{}, false
	}
	info, ok := w.warm[name]
	return info, ok
}

func (w *Wallet) cachePut(addr address.Address, info keystore.KeyInfo) {
	name := keyName(addr)
	w.warm[name] = info
	w.cache.Add(name)
}

// deriveAddress recovers the public address a KeyInfo's private key
// corresponds to.
func deriveAddress(info keystore.KeyInfo) (address.Address, error) {
	pub, err := crypto.PublicKey(info.Type, info.PrivateKey)
	if err != nil {
		return address.Undef, keystore.NewUnknownKeyTypeError(byte(info.Type))
	}
	switch info.Type {
	case crypto.Secp256k1:
		return address.NewSecp256k1Address(pub)
	case crypto.BLS:
		return address.NewBLSAddress(pub)
	default:
		return address.Undef, keystore.NewUnknownKeyTypeError(byte(info.Type))
	}
}

// Import derives addr's public address from info, stores it under
// "wallet-<addr>", and caches it in memory.
func (w *Wallet) Import(info keystore.KeyInfo) (address.Address, error) {
	addr, err := deriveAddress(info)
	if err != nil {
		return address.Undef, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.ks.Put(keyName(addr), info); err != nil {
		return address.Undef, keystore.NewKeyStoreError(err)
	}
	w.cachePut(addr, info)
	return addr, nil
}

// Generate creates a random key of the given type via the OS CSPRNG,
// stores it, caches it, and sets it as the default if no default
// exists yet.
func (w *Wallet) Generate(t crypto.Type) (address.Address, error) {
	info, err := randomKeyInfo(t)
	if err != nil {
		return address.Undef, err
	}
	addr, err := deriveAddress(info)
	if err != nil {
		return address.Undef, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.ks.Put(keyName(addr), info); err != nil {
		return address.Undef, keystore.NewKeyStoreError(err)
	}
	w.cachePut(addr, info)

	if _, err := w.ks.Get(keystore.NameDefault); err != nil {
		if _, err := w.ks.Put(keystore.NameDefault, info); err != nil {
			return address.Undef, keystore.NewKeyStoreError(err)
		}
	}
	return addr, nil
}

// Sign looks up the cached or stored key for addr and signs msg with
// it.
func (w *Wallet) Sign(addr address.Address, msg []byte) (crypto.Signature, error) {
	w.mu.RLock()
	info, hit := w.cacheGet(addr)
	w.mu.RUnlock()

	if !hit {
		fetched, err := w.ks.Get(keyName(addr))
		if err != nil {
			return crypto.Signature{}, keystore.NewKeyNotFoundError(addr.String())
		}
		info = fetched

		w.mu.Lock()
		w.cachePut(addr, info)
		w.mu.Unlock()
	}

	return crypto.Sign(info.Type, info.PrivateKey, msg)
}

// HasKey reports whether addr has a key stored, without signing.
func (w *Wallet) HasKey(addr address.Address) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if _, hit := w.cacheGet(addr); hit {
		return true
	}
	_, err := w.ks.Get(keyName(addr))
	return err == nil
}

// ListAddrs walks the keystore's names, strips the wallet- prefix,
// parses each remaining name as an address, and returns them sorted.
func (w *Wallet) ListAddrs() ([]address.Address, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	names, err := w.ks.List()
	if err != nil {
		return nil, keystore.NewKeyStoreError(err)
	}

	var addrs []address.Address
	for _, name := range names {
		if len(name) <= len(walletNamePrefix) || name[:len(walletNamePrefix)] != walletNamePrefix {
			continue
		}
		addr, err := address.Parse(name[len(walletNamePrefix):])
		if err != nil {
			continue
		}
		addrs = append(addrs, addr)
	}

	sort.Slice(addrs, func(i, j int) bool {
		return addrs[i].String() < addrs[j].String()
	})
	return addrs, nil
}

// GetDefault returns the wallet's distinguished default address.
func (w *Wallet) GetDefault() (address.Address, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	info, err := w.ks.Get(keystore.NameDefault)
	if err != nil {
		return address.Undef, keystore.NewKeyNotFoundError(keystore.NameDefault)
	}
	return deriveAddress(info)
}

// SetDefault overwrites the default slot with addr's stored key.
func (w *Wallet) SetDefault(addr address.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	info, err := w.ks.Get(keyName(addr))
	if err != nil {
		return keystore.NewKeyNotFoundError(addr.String())
	}
	if _, err := w.ks.Put(keystore.NameDefault, info); err != nil {
		return keystore.NewKeyStoreError(err)
	}
	return nil
}
