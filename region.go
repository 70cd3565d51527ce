// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memmgr

import "errors"

// errZeroUnmap is returned by osUnmap when asked to release a zero-length
// range.
var errZeroUnmap = errors.New("memmgr: unmap of zero length")

// errUnknownRegion is returned by the Windows osUnmap when a view address
// has no recorded mapping handle; this should be unreachable in practice.
var errUnknownRegion = errors.New("memmgr: unmap of unknown region")
