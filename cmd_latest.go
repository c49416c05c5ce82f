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
		var published string
		cmd := &cobra.Command{
			Use:   "latest [flags] [VERSIONS...]",
			Short: "Print the newest of the versions",
			Args:  cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),

			RunE: func(cmd *cobra.Command, args []string) error {
				versions, err := collectVersions(cmd, args, published)
				if err != nil {
					return err
				}
				latest, err := forkver.Latest(versions)
				if err != nil {
					return err
				}
				return printLines(cmd, latest)
			},
		}
		addPublishedFlag(cmd, &published)
		argparser.AddCommand(cmd)
	})
}
