// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memmgr

// findFit returns the first free block at least n bytes in size (first-fit,
// not best-fit), expanding the heap if none qualifies.
func (a *Allocator) findFit(n uintptr) (*block, error) {
	for b := a.heap.freeHead; b != nil; b = b.next {
		if b.size >= n {
			return b, nil
		}
	}
	return a.expandHeap(n)
}

// insertFree splices b into h's free list in address order and then
// coalesces. The list is always walked to its actual tail when b's base
// address is greater than every existing member, rather than assuming it
// belongs right after the head once the list holds more than one block.
func insertFree(h *heapDescriptor, b *block) {
	b.next, b.prev = nil, nil

	switch {
	case h.freeHead == nil:
		h.freeHead = b
	case b.base() < h.freeHead.base():
		b.next = h.freeHead
		h.freeHead.prev = b
		h.freeHead = b
	default:
		cur := h.freeHead
		for cur.next != nil && cur.next.base() < b.base() {
			cur = cur.next
		}
		b.next = cur.next
		b.prev = cur
		if cur.next != nil {
			cur.next.prev = b
		}
		cur.next = b
	}

	coalesce(h)
}

// removeFree unlinks b from h's free list, patching its neighbors and the
// list head as needed, and clears b's sibling pointers.
func removeFree(h *heapDescriptor, b *block) {
	switch {
	case b.prev == nil && b.next == nil:
		h.freeHead = nil
	case b.prev == nil:
		h.freeHead = b.next
		b.next.prev = nil
	case b.next == nil:
		b.prev.next = nil
	default:
		b.prev.next = b.next
		b.next.prev = b.prev
	}
	b.next = nil
	b.prev = nil
}

// coalesce walks the free list from the head forward, folding every block
// into its predecessor when the two are address-adjacent and were carved
// from the same region. Absorbing a neighbor can only ever expose its own
// successor as a new coalescing candidate, never an earlier block, so one
// forward pass is always sufficient.
func coalesce(h *heapDescriptor) {
	cur := h.freeHead
	for cur != nil && cur.next != nil {
		if cur.end() == cur.next.base() && cur.region == cur.next.region {
			absorbed := cur.next
			cur.size += absorbed.size
			cur.next = absorbed.next
			if absorbed.next != nil {
				absorbed.next.prev = cur
			}
			continue
		}
		cur = cur.next
	}
}

// splitBlock cuts b into a left block sized want (including its header)
// and a right remainder, iff the remainder would be at least minBlock
// bytes; otherwise b is returned unchanged. The caller is expected to
// remove the returned block from the free list immediately afterward, so
// b keeps its own position in the list and the right remainder, when
// created, is spliced in immediately after it rather than being
// reinserted in sorted order.
func splitBlock(h *heapDescriptor, b *block, want uintptr) *block {
	remain := b.size - want
	if remain < minBlock {
		return b
	}

	right := initBlock(unsafePtrAdd(b, want), remain, b.region)
	right.prev = b
	right.next = b.next
	if b.next != nil {
		b.next.prev = right
	}
	b.next = right
	b.size = want
	return b
}
