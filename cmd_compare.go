// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yolziii/piii-release/pkg/cliutil"
	"github.com/yolziii/piii-release/pkg/forkver"
)

func init() {
	subcommands = append(subcommands, func(argparser *cobra.Command) {
		cmd := &cobra.Command{
			Use:   "compare [flags] VERSION_A VERSION_B",
			Short: "Print -1, 0 or 1 as VERSION_A is older than, equal to, or newer than VERSION_B",
			Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),

			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := forkver.Compare(args[0], args[1])
				if err != nil {
					return err
				}
				switch {
				case d < 0:
					d = -1
				case d > 0:
					d = 1
				}
				return printLines(cmd, strconv.Itoa(d))
			},
		}
		argparser.AddCommand(cmd)
	})
}
