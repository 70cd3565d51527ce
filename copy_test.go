// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memmgr

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestFillZero(t *testing.T) {
	buf := make([]byte, 32)
	for i := range buf {
		buf[i] = 0xff
	}

	fillZero(unsafe.Pointer(&buf[0]), 32)
	for i, b := range buf {
		assert.Zero(t, b, "byte %d was not zeroed", i)
	}
}

func TestCopyBytes(t *testing.T) {
	src := make([]byte, 16)
	for i := range src {
		src[i] = byte(i + 1)
	}
	dst := make([]byte, 16)

	copyBytes(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), 16)
	assert.Equal(t, src, dst)
}

func TestCopyBytesPartial(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6}
	dst := make([]byte, len(src))

	copyBytes(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), 3)
	assert.Equal(t, []byte{1, 2, 3, 0, 0, 0}, dst)
}
