// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin || dragonfly || freebsd || linux || openbsd || netbsd || solaris

package memmgr

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// osMap requests an anonymous, private, read-write mapping of exactly size
// bytes and returns its base address. It has no side effect beyond the
// mmap(2) call and never logs.
func osMap(size uintptr) (unsafe.Pointer, error) {
	b, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}

	return unsafe.Pointer(&b[0]), nil
}

// osUnmap releases the mapping at p of length size.
func osUnmap(p unsafe.Pointer, size uintptr) error {
	if size == 0 {
		return errZeroUnmap
	}

	b := unsafe.Slice((*byte)(p), int(size))
	return unix.Munmap(b)
}
