// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memmgr

// maxSize is the largest value a request size may take, leaving headroom
// for headerSize to be added on top without itself overflowing.
const maxSize = ^uintptr(0) >> 1

// checkedMul returns count*size, or 0 if either factor is zero or the
// product would overflow a uintptr. The caller cannot distinguish "asked
// for zero bytes" from "refused due to overflow" from the return value
// alone, which is the point: both are reported as failure by ZeroAllocate.
func checkedMul(count, size uintptr) uintptr {
	if count == 0 || size == 0 {
		return 0
	}

	total := count * size
	if total/count != size {
		return 0
	}

	return total
}
