// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin || dragonfly || freebsd || linux || openbsd || netbsd || solaris

package memmgr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOsMapUnmapRoundTrip(t *testing.T) {
	const size = 4096
	p, err := osMap(size)
	require.NoError(t, err)
	require.NotNil(t, p)

	// The region must be writable.
	fillZero(p, size)

	require.NoError(t, osUnmap(p, size))
}

func TestOsUnmapZeroLengthRefused(t *testing.T) {
	p, err := osMap(4096)
	require.NoError(t, err)
	defer osUnmap(p, 4096)

	err = osUnmap(p, 0)
	require.ErrorIs(t, err, errZeroUnmap)
}
