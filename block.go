// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memmgr

import "unsafe"

// block is the fixed-size header at the front of every block, free or
// live. next and prev are only meaningful while the block is free; a live
// block's sibling links are not inspected by the allocator.
//
// region records the base address of the OS mapping this block was carved
// from. coalesce only merges neighbors that share it, so no free block ever
// spans two regions — see freelist.go. Teardown does not read it; it unmaps
// by the region registry — see heap.go.
type block struct {
	size   uintptr
	data   unsafe.Pointer
	next   *block
	prev   *block
	region unsafe.Pointer
}

// headerSize is the number of bytes a block's header occupies in front of
// its payload.
const headerSize = unsafe.Sizeof(block{})

// minBlock is the smallest size, including header, a block may have. The
// split operation refuses to create anything smaller.
const minBlock = headerSize + 1

// blockAt overlays a *block onto the memory starting at p. p must be the
// base address of a block header, not a payload pointer.
func blockAt(p unsafe.Pointer) *block {
	return (*block)(p)
}

// blockFromData recovers a block's header from a pointer previously handed
// out as that block's payload.
func blockFromData(p unsafe.Pointer) *block {
	return blockAt(unsafe.Pointer(uintptr(p) - headerSize))
}

// base returns the address of b's own header.
func (b *block) base() uintptr {
	return uintptr(unsafe.Pointer(b))
}

// end returns the address one past the last byte of b.
func (b *block) end() uintptr {
	return b.base() + b.size
}

// payload returns the number of usable bytes in b, excluding its header.
func (b *block) payload() uintptr {
	return b.size - headerSize
}

// unsafePtrAdd returns the address off bytes past the start of b's header.
func unsafePtrAdd(b *block, off uintptr) unsafe.Pointer {
	return unsafe.Pointer(b.base() + off)
}

// initBlock writes a fresh header at base, sized size, tagged as carved
// from region, and returns it. The block is not linked into any list.
func initBlock(base unsafe.Pointer, size uintptr, region unsafe.Pointer) *block {
	b := blockAt(base)
	b.size = size
	b.data = unsafe.Pointer(uintptr(base) + headerSize)
	b.next = nil
	b.prev = nil
	b.region = region
	return b
}
