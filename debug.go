// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memmgr

import (
	"fmt"
	"os"
	"sync"
)

var (
	traceOnce    sync.Once
	traceEnabled bool

	traceMu sync.Mutex
	tracing bool
)

// debugEnabled reports whether MEMORY_DEBUG is set to the literal value
// "yes". The environment is read exactly once, lazily, the first time any
// public operation asks.
func debugEnabled() bool {
	traceOnce.Do(func() {
		traceEnabled = os.Getenv("MEMORY_DEBUG") == "yes"
	})
	return traceEnabled
}

// trace writes a formatted line to standard error if tracing is enabled.
// Callers routinely hold an Allocator's own lock when they call this, so it
// never itself blocks: a non-blocking TryLock plus the tracing flag both
// have to agree the sink is idle before anything is written, and a call
// that finds either one held returns silently instead of waiting.
func trace(format string, args ...interface{}) {
	if !traceMu.TryLock() {
		return
	}
	defer traceMu.Unlock()

	if !debugEnabled() {
		return
	}

	if tracing {
		return
	}
	tracing = true
	defer func() { tracing = false }()

	fmt.Fprintf(os.Stderr, format, args...)
}
