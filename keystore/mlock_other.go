// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build windows

package keystore

// mlock is a no-op on platforms without a page-pinning syscall.
func mlock(b []byte) error { return nil }

// munlock is a no-op on platforms without a page-pinning syscall.
func munlock(b []byte) error { return nil }
