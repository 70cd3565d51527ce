// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memmgr implements a user-space general-purpose memory allocator.
//
// It replaces the four standard allocation primitives — allocate,
// zero-and-allocate, resize-in-place-or-move, and release — without relying
// on any other heap facility. Its only source of raw memory is the
// operating system's anonymous private mapping facility: memory is acquired
// in large regions and subdivided into blocks on demand, amortizing the
// cost of the underlying mmap/munmap calls.
//
// The allocator is a single address-ordered free list of blocks, each
// headed by a small fixed-size struct living in front of its payload.
// Allocation is first-fit; adjacent free blocks carved from the same region
// are coalesced on release;
// a free block larger than a request is split, and the heap is returned to
// the operating system in full once every block is free again.
//
// A package-level Default allocator backs the four package functions,
// Allocate, ZeroAllocate, Reallocate, and Release. Callers that need an
// isolated heap — tests, mainly — can construct their own *Allocator; its
// zero value is ready for use.
//
// Setting the environment variable MEMORY_DEBUG to the literal value "yes"
// enables a trace of every public call to standard error. The variable is
// read once, lazily, on first use.
package memmgr
