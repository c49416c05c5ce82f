// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"strconv"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/yolziii/piii-release/pkg/cliutil"
	"github.com/yolziii/piii-release/pkg/forkver"
)

func init() {
	subcommands = append(subcommands, func(argparser *cobra.Command) {
		var published string
		cmd := &cobra.Command{
			Use:   "check [flags] CURRENT [LATEST]",
			Short: "Print whether a newer version than CURRENT is available",
			Args:  cliutil.WrapPositionalArgs(cobra.RangeArgs(1, 2)),
			Long: "Print \"true\" if LATEST is newer than CURRENT, or \"false\" if it is not.  " +
				"Instead of passing LATEST, the newest version in the --published list may " +
				"be used.",

			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				current := args[0]
				var latest string
				switch {
				case len(args) == 2 && published != "":
					return cliutil.FlagErrorFunc(cmd, errors.New("LATEST and --published are mutually exclusive"))
				case len(args) == 2:
					latest = args[1]
				case published != "":
					versions, err := readVersionList(cmd, published)
					if err != nil {
						return err
					}
					latest, err = forkver.Latest(versions)
					if err != nil {
						return err
					}
					dlog.Infof(ctx, "latest published version: %s", latest)
				default:
					return cliutil.FlagErrorFunc(cmd, errors.New("either LATEST or --published is required"))
				}

				update, err := forkver.UpdateAvailable(current, latest)
				if err != nil {
					return err
				}
				if update {
					dlog.Infof(ctx, "update available: %s -> %s", current, latest)
				} else {
					dlog.Infof(ctx, "%s is up to date", current)
				}
				return printLines(cmd, strconv.FormatBool(update))
			},
		}
		addPublishedFlag(cmd, &published)
		argparser.AddCommand(cmd)
	})
}
