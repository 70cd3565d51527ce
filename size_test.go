// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memmgr

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckedMulOrdinary(t *testing.T) {
	assert.Equal(t, uintptr(200), checkedMul(20, 10))
}

func TestCheckedMulZeroFactor(t *testing.T) {
	assert.Equal(t, uintptr(0), checkedMul(0, 10))
	assert.Equal(t, uintptr(0), checkedMul(10, 0))
}

func TestCheckedMulOverflow(t *testing.T) {
	half := uintptr(1) << (bits.UintSize - 1)
	assert.Equal(t, uintptr(0), checkedMul(half, 2))
}

func TestCheckedMulNoFalsePositive(t *testing.T) {
	big := uintptr(1) << (bits.UintSize - 2)
	assert.Equal(t, big*3, checkedMul(big, 3))
}
