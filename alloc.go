// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memmgr

import (
	"errors"
	"sync"
	"unsafe"
)

// Sentinel errors returned alongside a nil pointer. Callers that only care
// about null-vs-non-null may ignore them.
var (
	ErrZeroSize    = errors.New("memmgr: zero size requested")
	ErrOverflow    = errors.New("memmgr: size computation overflowed")
	ErrOutOfMemory = errors.New("memmgr: out of memory")
)

// Allocator allocates and releases memory backed by anonymous OS mappings.
// Its zero value is ready for use. A single mutex serializes every public
// method; no method is reentrant on it.
type Allocator struct {
	mu sync.Mutex

	heap    *heapDescriptor
	regions map[unsafe.Pointer]uintptr

	allocs int
	mmaps  int
	bytes  uintptr
}

// Stats is a read-only snapshot of an Allocator's activity counters.
type Stats struct {
	Allocs int     // live allocations outstanding
	Mmaps  int     // regions currently mapped
	Bytes  uintptr // bytes currently mapped, across all regions
}

// Default is the package-wide allocator backing Allocate, ZeroAllocate,
// Reallocate, and Release.
var Default = &Allocator{}

// Allocate requests n bytes and returns a pointer to them, or nil on
// failure. The memory is not initialized. Allocate fails for n == 0
// without touching the heap.
func Allocate(n uintptr) (unsafe.Pointer, error) { return Default.Allocate(n) }

// ZeroAllocate requests count*size zeroed bytes. It fails, returning nil,
// if either factor is zero or their product overflows.
func ZeroAllocate(count, size uintptr) (unsafe.Pointer, error) {
	return Default.ZeroAllocate(count, size)
}

// Reallocate resizes the allocation at p to n bytes, possibly moving it.
// See Allocator.Reallocate for the full contract.
func Reallocate(p unsafe.Pointer, n uintptr) (unsafe.Pointer, error) {
	return Default.Reallocate(p, n)
}

// Release returns the allocation at p to the heap. Release(nil) is a no-op.
func Release(p unsafe.Pointer) { Default.Release(p) }

// Allocate is the Allocator method backing the package-level Allocate.
func (a *Allocator) Allocate(n uintptr) (r unsafe.Pointer, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r, err = a.allocateLocked(n)
	trace("Allocate(%#x) %p, %v\n", n, r, err)
	return r, err
}

// ZeroAllocate is the Allocator method backing the package-level
// ZeroAllocate.
func (a *Allocator) ZeroAllocate(count, size uintptr) (r unsafe.Pointer, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	defer func() { trace("ZeroAllocate(%#x, %#x) %p, %v\n", count, size, r, err) }()

	total := checkedMul(count, size)
	if total == 0 {
		if count == 0 || size == 0 {
			return nil, ErrZeroSize
		}
		return nil, ErrOverflow
	}

	r, err = a.allocateLocked(total)
	if err != nil {
		return nil, err
	}

	fillZero(r, total)
	return r, nil
}

// Reallocate is the Allocator method backing the package-level Reallocate.
//
// Reallocate(nil, n) behaves like Allocate(n). Reallocate(p, 0) behaves
// like Release(p) and returns nil. Otherwise a new block is allocated, the
// lesser of n and the old block's payload size is copied into it, the old
// block is released, and the new pointer is returned. If the new
// allocation fails, p remains valid and unmodified.
func (a *Allocator) Reallocate(p unsafe.Pointer, n uintptr) (r unsafe.Pointer, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r, err = a.reallocateLocked(p, n)
	trace("Reallocate(%p, %#x) %p, %v\n", p, n, r, err)
	return r, err
}

// Release is the Allocator method backing the package-level Release.
func (a *Allocator) Release(p unsafe.Pointer) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.releaseLocked(p)
	trace("Release(%p)\n", p)
}

// Stats returns a snapshot of a's activity counters.
func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Stats{Allocs: a.allocs, Mmaps: a.mmaps, Bytes: a.bytes}
}

func (a *Allocator) allocateLocked(n uintptr) (unsafe.Pointer, error) {
	if n == 0 {
		return nil, ErrZeroSize
	}

	if n > maxSize-headerSize {
		return nil, ErrOverflow
	}

	if a.heap == nil {
		if err := a.initHeap(); err != nil {
			return nil, ErrOutOfMemory
		}
	}

	req := n + headerSize
	b, err := a.findFit(req)
	if err != nil {
		return nil, ErrOutOfMemory
	}

	if req < b.size {
		b = splitBlock(a.heap, b, req)
	}
	removeFree(a.heap, b)
	a.allocs++
	return b.data, nil
}

func (a *Allocator) reallocateLocked(p unsafe.Pointer, n uintptr) (unsafe.Pointer, error) {
	switch {
	case n == 0 && p != nil:
		a.releaseLocked(p)
		return nil, nil
	case p == nil:
		return a.allocateLocked(n)
	}

	old := blockFromData(p)
	oldPayload := old.payload()

	r, err := a.allocateLocked(n)
	if err != nil {
		return nil, err
	}

	copyLen := n
	if oldPayload < copyLen {
		copyLen = oldPayload
	}
	copyBytes(r, p, copyLen)
	a.releaseLocked(p)
	return r, nil
}

func (a *Allocator) releaseLocked(p unsafe.Pointer) {
	if p == nil {
		return
	}

	b := blockFromData(p)
	insertFree(a.heap, b)
	a.allocs--

	if a.entirelyFree() {
		a.tearDown()
	}
}
