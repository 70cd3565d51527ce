// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"unsafe"

	"github.com/spf13/cobra"

	memmgr "github.com/dustinfast/mem-mgr"
)

var (
	benchCount  int
	benchMaxLen int
	benchSeed   int64
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchCount, "count", 10000, "number of allocate/release cycles")
	cmd.Flags().IntVar(&benchMaxLen, "max-size", 4096, "largest single request, in bytes")
	cmd.Flags().Int64Var(&benchSeed, "seed", 1, "PRNG seed for the request-size sequence")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Run an allocate/release workload against a fresh allocator",
		Long: `bench drives a fresh memmgr.Allocator through a sequence of
Allocate and Release calls of randomized sizes, then reports the
allocator's region and byte counters.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

func runBench() error {
	var a memmgr.Allocator
	rng := rand.New(rand.NewSource(benchSeed))

	live := make([]unsafe.Pointer, 0, benchCount)
	for i := 0; i < benchCount; i++ {
		n := uintptr(rng.Intn(benchMaxLen) + 1)
		p, err := a.Allocate(n)
		if err != nil {
			return fmt.Errorf("allocate %#x: %w", n, err)
		}
		live = append(live, p)
		printVerbose("allocate(%#x) -> %p\n", n, p)

		if len(live) > 1 && rng.Intn(2) == 0 {
			j := rng.Intn(len(live))
			a.Release(live[j])
			printVerbose("release(%p)\n", live[j])
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
		}
	}

	for _, p := range live {
		a.Release(p)
	}

	stats := a.Stats()
	fmt.Printf("allocs outstanding: %d\n", stats.Allocs)
	fmt.Printf("regions mapped:     %d\n", stats.Mmaps)
	fmt.Printf("bytes mapped:       %d\n", stats.Bytes)
	return nil
}
