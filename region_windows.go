// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package memmgr

import (
	"sync"
	"syscall"
	"unsafe"
)

// windowsMaps recovers the file-mapping handle backing a region, keyed by
// its base address, since munmap-equivalent teardown on Windows needs the
// handle CreateFileMapping produced, not just the view address.
var (
	windowsMapsMu sync.Mutex
	windowsMaps   = map[uintptr]syscall.Handle{}
)

// osMap requests an anonymous, private, read-write mapping of exactly size
// bytes via CreateFileMapping backed by the system paging file, followed by
// MapViewOfFile to obtain an actual address, the same two-step dance the
// teacher's mmap_windows.go performs.
func osMap(size uintptr) (unsafe.Pointer, error) {
	flProtect := uint32(syscall.PAGE_READWRITE)
	dwDesiredAccess := uint32(syscall.FILE_MAP_WRITE)

	maxSizeHigh := uint32(uint64(size) >> 32)
	maxSizeLow := uint32(uint64(size) & 0xFFFFFFFF)
	h, err := syscall.CreateFileMapping(syscall.InvalidHandle, nil, flProtect, maxSizeHigh, maxSizeLow, nil)
	if h == 0 {
		return nil, err
	}

	addr, err := syscall.MapViewOfFile(h, dwDesiredAccess, 0, 0, size)
	if addr == 0 {
		syscall.CloseHandle(h)
		return nil, err
	}

	windowsMapsMu.Lock()
	windowsMaps[addr] = h
	windowsMapsMu.Unlock()
	return unsafe.Pointer(addr), nil
}

// osUnmap releases the mapping at p of length size.
func osUnmap(p unsafe.Pointer, size uintptr) error {
	if size == 0 {
		return errZeroUnmap
	}

	addr := uintptr(p)
	if err := syscall.UnmapViewOfFile(addr); err != nil {
		return err
	}

	windowsMapsMu.Lock()
	h, ok := windowsMaps[addr]
	delete(windowsMaps, addr)
	windowsMapsMu.Unlock()
	if !ok {
		return errUnknownRegion
	}

	return syscall.CloseHandle(h)
}
