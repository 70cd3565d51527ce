// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memmgr

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestBlockDataRoundTrip(t *testing.T) {
	arena := make([]byte, 256)
	region := unsafe.Pointer(&arena[0])

	b := initBlock(region, 256, region)
	assert.Equal(t, uintptr(256), b.size)
	assert.Equal(t, uintptr(256)-headerSize, b.payload())
	assert.Equal(t, b.base()+headerSize, uintptr(b.data))

	recovered := blockFromData(b.data)
	assert.Same(t, b, recovered)
}

func TestBlockBaseAndEnd(t *testing.T) {
	arena := make([]byte, 128)
	b := initBlock(unsafe.Pointer(&arena[0]), 128, unsafe.Pointer(&arena[0]))
	assert.Equal(t, b.base()+128, b.end())
}

func TestMinBlockFitsHeaderPlusOneByte(t *testing.T) {
	assert.Equal(t, headerSize+1, minBlock)
}
