// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"github.com/jrick/logrotate/rotator"
	"github.com/syndtr/goleveldb/leveldb"
)

// FileKeyStore is a goleveldb-backed KeyStore: the on-disk reference
// implementor the interface needs, since the datastore key model and
// KV backend internals are out of this module's scope but a concrete
// KeyStore the core can ship as its own default is not.
//
// Every mutating call is logged to a rotating audit log via
// jrick/logrotate, mirroring the teacher's mining/randomx log-sink
// wiring pattern; private key bytes passed through Put are mlock'd for
// the duration of the call so they never reach swap while in this
// process's hands.
type FileKeyStore struct {
	db    *leveldb.DB
	audit *rotator.Rotator
}

// OpenFileKeyStore opens (creating if absent) a goleveldb database at
// dbPath and a rotating audit log at auditLogPath.
func OpenFileKeyStore(dbPath, auditLogPath string) (*FileKeyStore, error) {
	db, err := leveldb.OpenFile(dbPath, nil)
	if err != nil {
		return nil, newKeyStoreError(err)
	}

	audit, err := rotator.New(auditLogPath, 10*1024, false, 3)
	if err != nil {
		db.Close()
		return nil, newKeyStoreError(err)
	}

	return &FileKeyStore{db: db, audit: audit}, nil
}

// Close releases the underlying database and audit log handles.
func (f *FileKeyStore) Close() error {
	auditErr := f.audit.Close()
	dbErr := f.db.Close()
	if dbErr != nil {
		return newKeyStoreError(dbErr)
	}
	if auditErr != nil {
		return newKeyStoreError(auditErr)
	}
	return nil
}

func (f *FileKeyStore) writeAudit(line string) {
	if f.audit == nil {
		return
	}
	_, _ = f.audit.Write([]byte(line + "\n"))
}

func (f *FileKeyStore) List() ([]string, error) {
	iter := f.db.NewIterator(nil, nil)
	defer iter.Release()

	var names []string
	for iter.Next() {
		names = append(names, string(iter.Key()))
	}
	if err := iter.Error(); err != nil {
		return nil, newKeyStoreError(err)
	}
	return names, nil
}

func (f *FileKeyStore) Get(name string) (KeyInfo, error) {
	raw, err := f.db.Get([]byte(name), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return KeyInfo{}, newKeyNotFoundError(name)
		}
		return KeyInfo{}, newKeyStoreError(err)
	}

	var info KeyInfo
	if err := info.UnmarshalCBOR(raw); err != nil {
		return KeyInfo{}, newKeyStoreError(err)
	}
	return info, nil
}

func (f *FileKeyStore) Put(name string, info KeyInfo) (*KeyInfo, error) {
	if err := mlock(info.PrivateKey); err == nil {
		defer munlock(info.PrivateKey)
	}

	var prior *KeyInfo
	if existing, err := f.Get(name); err == nil {
		prior = &existing
	}

	raw, err := info.MarshalCBOR()
	if err != nil {
		return nil, newKeyStoreError(err)
	}
	if err := f.db.Put([]byte(name), raw, nil); err != nil {
		return nil, newKeyStoreError(err)
	}

	f.writeAudit("put " + name)
	return prior, nil
}

func (f *FileKeyStore) Delete(name string) error {
	if err := f.db.Delete([]byte(name), nil); err != nil {
		return newKeyStoreError(err)
	}
	f.writeAudit("delete " + name)
	return nil
}
