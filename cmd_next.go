// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/yolziii/piii-release/pkg/cliutil"
	"github.com/yolziii/piii-release/pkg/forkver"
)

func init() {
	subcommands = append(subcommands, func(argparser *cobra.Command) {
		var flags struct {
			Published string
			Tag       bool
		}
		cmd := &cobra.Command{
			Use:   "next [flags] BASE [PUBLISHED_VERSIONS...]",
			Short: "Print the next unused fork version of a base version",
			Args:  cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
			Long: "Print BASE-piii.N, where N is one more than the highest counter of any " +
				"published BASE-piii.* version (or 1 if there are none).  Published " +
				"versions are taken from the arguments and from --published." +
				"\n\n" +
				"BASE may be a full version, such as the version field of the local " +
				"package manifest; only its leading MAJOR.MINOR.PATCH is used.",
			Example: "  npm view example-pkg versions --json | piii-release next --published=- 0.51.0",

			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				base, err := forkver.BaseVersion(args[0])
				if err != nil {
					return err
				}
				dlog.Infof(ctx, "local base version: %s", base)

				published, err := collectVersions(cmd, args[1:], flags.Published)
				if err != nil {
					return err
				}
				if n := forkver.MaxForkCounter(base, published); !n.IsZero() {
					dlog.Infof(ctx, "latest published fork version: %s", forkver.ForkVersion(base, n))
				}

				next := forkver.NextForkVersion(base, published)
				dlog.Infof(ctx, "next fork version: %s", next)
				if flags.Tag {
					next, err = forkver.TagName(next)
					if err != nil {
						return err
					}
				}
				return printLines(cmd, next)
			},
		}
		addPublishedFlag(cmd, &flags.Published)
		cmd.Flags().BoolVarP(&flags.Tag, "tag", "t", false,
			"Print the git tag of the version instead of the version itself")
		argparser.AddCommand(cmd)
	})
}
