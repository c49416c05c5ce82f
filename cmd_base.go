// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/yolziii/piii-release/pkg/cliutil"
	"github.com/yolziii/piii-release/pkg/forkver"
)

func init() {
	subcommands = append(subcommands, func(argparser *cobra.Command) {
		argparser.AddCommand(&cobra.Command{
			Use:   "base [flags] VERSION",
			Short: "Print the MAJOR.MINOR.PATCH that VERSION starts with",
			Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				base, err := forkver.BaseVersion(args[0])
				if err != nil {
					return err
				}
				return printLines(cmd, base)
			},
		})
	})
}
