// Copyright (c) 2025 The filecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !windows

package keystore

import "golang.org/x/sys/unix"

// mlock pins b's backing pages in physical memory so the private key
// material it holds cannot be paged to swap while in use.
func mlock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Mlock(b)
}

// munlock releases a prior mlock.
func munlock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munlock(b)
}
