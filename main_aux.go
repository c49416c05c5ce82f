// Copyright (C) 2021-2022  Ambassador Labs
// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

//go:build aux

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/yolziii/piii-release/pkg/cliutil"
)

// prepareDocDir empties (creating it if need be) the directory that docs are generated in to.
func prepareDocDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o777)
}

func init() {
	subcommands = append(subcommands, func(argparser *cobra.Command) {
		// completion
		argparser.CompletionOptions.DisableDefaultCmd = false
		argparser.CompletionOptions.HiddenDefaultCmd = true

		// man
		argparser.AddCommand(&cobra.Command{
			Hidden: true,
			Use:    "man OUT_DIRECTORY",
			Short:  "Generate man pages",
			Args:   cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				dir := args[0]
				if err := prepareDocDir(dir); err != nil {
					return err
				}
				root := cmd.Root()
				root.DisableAutoGenTag = true
				header := &doc.GenManHeader{
					Source: "piii-release",
					Manual: root.Name(),
				}
				return doc.GenManTree(root, header, dir)
			},
		})

		// mddoc
		argparser.AddCommand(&cobra.Command{
			Hidden: true,
			Use:    "mddoc OUT_DIRECTORY",
			Short:  "Generate markdown documentation",
			Args:   cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				dir := args[0]
				if err := prepareDocDir(dir); err != nil {
					return err
				}
				root := cmd.Root()
				root.DisableAutoGenTag = true
				return doc.GenMarkdownTree(root, dir)
			},
		})
	})
}
