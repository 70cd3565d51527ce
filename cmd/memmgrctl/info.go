// Copyright 2026 The Mem-Mgr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	memmgr "github.com/dustinfast/mem-mgr"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the allocator's compiled-in constants",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("init region size: %d bytes\n", memmgr.InitSize)
			fmt.Printf("block header size: %d bytes\n", memmgr.HeaderSize)
			return nil
		},
	}
}
