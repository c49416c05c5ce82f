// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/yolziii/piii-release/pkg/cliutil"
	"github.com/yolziii/piii-release/pkg/forkver"
	"github.com/yolziii/piii-release/pkg/versionlist"
)

func init() {
	subcommands = append(subcommands, func(argparser *cobra.Command) {
		var flags struct {
			Published string
			Reverse   bool
			Unique    bool
		}
		cmd := &cobra.Command{
			Use:   "sort [flags] [VERSIONS...]",
			Short: "Print versions one per line, oldest first",
			Args:  cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),
			Long: "Sort the versions given as arguments and in the --published list, oldest " +
				"first.  Versions that are equal keep the order they were given in.  If any " +
				"version is invalid, every invalid version is reported and nothing is printed.",

			RunE: func(cmd *cobra.Command, args []string) error {
				versions, err := collectVersions(cmd, args, flags.Published)
				if err != nil {
					return err
				}
				if flags.Unique {
					before := len(versions)
					versions = versionlist.Unique(versions)
					dlog.Debugf(cmd.Context(), "dropped %d duplicate versions", before-len(versions))
				}
				versions, err = forkver.Sort(versions)
				if err != nil {
					return err
				}
				if flags.Reverse {
					for i, j := 0, len(versions)-1; i < j; i, j = i+1, j-1 {
						versions[i], versions[j] = versions[j], versions[i]
					}
				}
				return printLines(cmd, versions...)
			},
		}
		addPublishedFlag(cmd, &flags.Published)
		cmd.Flags().BoolVarP(&flags.Reverse, "reverse", "r", false, "Print newest first")
		cmd.Flags().BoolVarP(&flags.Unique, "unique", "u", false, "Print each distinct version string only once")
		argparser.AddCommand(cmd)
	})
}
