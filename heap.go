// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memmgr

import "unsafe"

// initSize is the size, in bytes, of the region mapped to back the heap on
// first use. It is the reference allocator's INIT_SIZE.
const initSize = 16 << 20 // 16 MiB

// InitSize and HeaderSize are the package's compiled-in sizing constants,
// exported for callers (memmgrctl's info subcommand, mainly) that want to
// report on the allocator without reaching into its internals.
const (
	InitSize   = initSize
	HeaderSize = headerSize
)

// heapDescriptor is the process-wide (per Allocator) record of the heap.
// It is overlaid directly onto the first bytes of a mapped region rather
// than allocated on the Go heap — the allocator's bookkeeping lives in the
// memory it manages, not beside it.
type heapDescriptor struct {
	size     uintptr
	start    unsafe.Pointer
	freeHead *block
}

// heapHeaderSize is the number of bytes the descriptor itself occupies at
// the front of the first region.
const heapHeaderSize = unsafe.Sizeof(heapDescriptor{})

// mapRegion asks the OS for size bytes and records it in a's region
// registry, the Go-managed bookkeeping that keeps teardown correct once
// coalescing is in play: coalescing may fold blocks together, but every
// region mapped in is unmapped exactly once, by its own base and length,
// never inferred from whatever free blocks happen to cover it.
func (a *Allocator) mapRegion(size uintptr) (unsafe.Pointer, error) {
	p, err := osMap(size)
	if err != nil {
		return nil, err
	}

	if a.regions == nil {
		a.regions = map[unsafe.Pointer]uintptr{}
	}
	a.regions[p] = size
	a.mmaps++
	a.bytes += size
	return p, nil
}

// unmapRegion releases the region at p, which must be a key of a.regions.
func (a *Allocator) unmapRegion(p unsafe.Pointer) error {
	size := a.regions[p]
	delete(a.regions, p)
	a.mmaps--
	a.bytes -= size
	return osUnmap(p, size)
}

// initHeap maps the first region and carves it into the descriptor plus one
// free block. It is only ever called while a.heap == nil.
func (a *Allocator) initHeap() error {
	p, err := a.mapRegion(initSize)
	if err != nil {
		return err
	}

	h := (*heapDescriptor)(p)
	h.start = p
	h.size = initSize
	h.freeHead = initBlock(unsafe.Pointer(uintptr(p)+heapHeaderSize), initSize-heapHeaderSize, p)
	a.heap = h
	return nil
}

// expandHeap maps a new region sized to satisfy a request of req bytes
// (already including that request's own block header), links it into the
// free list as a single block, and grows the heap's total size. The region
// is sized max(req, initSize); it never modifies the free list before the
// map call can be observed to have succeeded.
func (a *Allocator) expandHeap(req uintptr) (*block, error) {
	size := req
	if size < initSize {
		size = initSize
	}

	p, err := a.mapRegion(size)
	if err != nil {
		return nil, err
	}

	b := initBlock(p, size, p)
	a.heap.size += size
	insertFree(a.heap, b)
	return b, nil
}

// freeBytes sums the size of every block currently on the free list.
func (a *Allocator) freeBytes() uintptr {
	var total uintptr
	for b := a.heap.freeHead; b != nil; b = b.next {
		total += b.size
	}
	return total
}

// entirelyFree reports whether every byte of the heap, besides the
// descriptor's own header, is on the free list.
func (a *Allocator) entirelyFree() bool {
	return a.heap != nil && a.freeBytes() == a.heap.size-heapHeaderSize
}

// tearDown unmaps every region the heap currently holds and resets a to the
// uninitialized state, so the next allocation reinitializes from scratch.
// It walks the region registry, not the free list — see mapRegion's
// comment for why that distinction matters once blocks have coalesced.
func (a *Allocator) tearDown() {
	bases := make([]unsafe.Pointer, 0, len(a.regions))
	for base := range a.regions {
		bases = append(bases, base)
	}
	for _, base := range bases {
		// Best effort: an unmap failure here is silently absorbed.
		_ = a.unmapRegion(base)
	}
	a.heap = nil
}
