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

// number is written as a bare integer however many digits it has, except that YAML quotes it
// once it no longer fits in an int64.
type number forkver.Number

func (n number) MarshalJSON() ([]byte, error) {
	return []byte(forkver.Number(n).String()), nil
}

func (n number) MarshalYAML() (interface{}, error) {
	str := forkver.Number(n).String()
	if i, err := strconv.ParseInt(str, 10, 64); err == nil {
		return i, nil
	}
	return str, nil
}

type parsedVersion struct {
	Version     string  `yaml:"version" json:"version"`
	Major       number  `yaml:"major" json:"major"`
	Minor       number  `yaml:"minor" json:"minor"`
	Patch       number  `yaml:"patch" json:"patch"`
	Prerelease  string  `yaml:"prerelease,omitempty" json:"prerelease,omitempty"`
	Stable      bool    `yaml:"stable" json:"stable"`
	ForkCounter *number `yaml:"forkCounter,omitempty" json:"forkCounter,omitempty"`
}

func init() {
	subcommands = append(subcommands, func(argparser *cobra.Command) {
		output := outputYAML
		cmd := &cobra.Command{
			Use:   "parse [flags] VERSIONS...",
			Short: "Show the components of versions",
			Args:  cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),

			RunE: func(cmd *cobra.Command, args []string) error {
				ret := make([]parsedVersion, 0, len(args))
				for _, arg := range args {
					ver, err := forkver.ParseVersion(arg)
					if err != nil {
						return err
					}
					item := parsedVersion{
						Version:    arg,
						Major:      number(ver.Major),
						Minor:      number(ver.Minor),
						Patch:      number(ver.Patch),
						Prerelease: ver.Prerelease,
						Stable:     ver.IsStable(),
					}
					if n, ok := ver.ForkCounter(); ok {
						counter := number(n)
						item.ForkCounter = &counter
					}
					ret = append(ret, item)
				}
				return output.write(cmd.OutOrStdout(), ret)
			},
		}
		cmd.Flags().VarP(&output, "output", "o", "Write the result as `FORMAT` (yaml or json)")
		argparser.AddCommand(cmd)
	})
}
