// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memmgr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitHeapLaysOutDescriptorAndOneBlock(t *testing.T) {
	var a Allocator
	require.NoError(t, a.initHeap())
	defer a.tearDown()

	require.NotNil(t, a.heap)
	require.Equal(t, uintptr(initSize), a.heap.size)
	require.Equal(t, a.heap.start, a.heap.freeHead.region)
	require.Equal(t, initSize-int(heapHeaderSize), int(a.heap.freeHead.size))
	require.True(t, a.entirelyFree())
	require.Equal(t, 1, a.mmaps)
}

func TestExpandHeapGrowsTotalAndLinksBlock(t *testing.T) {
	var a Allocator
	require.NoError(t, a.initHeap())
	defer a.tearDown()

	before := a.heap.size
	want := uintptr(20 << 20) // bigger than initSize
	_, err := a.expandHeap(want)
	require.NoError(t, err)

	require.GreaterOrEqual(t, a.heap.size, before+want)
	require.Equal(t, 2, a.mmaps)
	require.True(t, a.entirelyFree())
}

func TestExpandHeapUsesInitSizeFloor(t *testing.T) {
	var a Allocator
	require.NoError(t, a.initHeap())
	defer a.tearDown()

	before := a.heap.size
	_, err := a.expandHeap(64)
	require.NoError(t, err)
	require.Equal(t, before+initSize, a.heap.size)
}

func TestTearDownClearsHeapAndUnmapsEverything(t *testing.T) {
	var a Allocator
	require.NoError(t, a.initHeap())
	require.Equal(t, 1, a.mmaps)

	a.tearDown()
	require.Nil(t, a.heap)
	require.Equal(t, 0, a.mmaps)
	require.Equal(t, uintptr(0), a.bytes)
}

func TestReinitAfterTeardown(t *testing.T) {
	var a Allocator
	require.NoError(t, a.initHeap())
	a.tearDown()

	require.NoError(t, a.initHeap())
	defer a.tearDown()
	require.NotNil(t, a.heap)
	require.Equal(t, uintptr(initSize), a.heap.size)
}
