// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command memmgrctl drives the mem-mgr allocator from outside its package:
// a bench subcommand runs an alloc/free workload and reports region and
// byte counts, and an info subcommand prints the compiled-in constants.
// Neither subcommand is part of the allocator's core; both are external
// observers only.
package main

func main() {
	execute()
}
