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
			Use:   "tag [flags] VERSION",
			Short: "Print the git tag that a release of VERSION is tagged as",
			Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				tag, err := forkver.TagName(args[0])
				if err != nil {
					return err
				}
				return printLines(cmd, tag)
			},
		})
	})
}
