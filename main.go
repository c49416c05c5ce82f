// Copyright (C) 2021-2022  Ambassador Labs
// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

// Command piii-release computes and compares versions of the piii fork, for use by release
// scripts.
package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yolziii/piii-release/pkg/cliutil"
)

// subcommands is populated by the init() functions in the cmd_*.go files.
//
//nolint:gochecknoglobals // registry
var subcommands []func(argparser *cobra.Command)

func newArgparser() *cobra.Command {
	var logLevel string
	argparser := &cobra.Command{
		Use:   "piii-release {[flags]|SUBCOMMAND...}",
		Short: "Version helper for fork releases",
		Long: "Parse, order and compute versions of the piii fork.  Fork releases are " +
			"numbered BASE-piii.N, where BASE is the upstream release that the fork is built " +
			"on and N counts the fork's own releases of that BASE.  A fork release sorts " +
			"after its BASE.",

		Args: cliutil.OnlySubcommands,
		RunE: cliutil.RunSubcommands,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := cliutil.WithLogLevel(cmd.Context(), cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return cliutil.FlagErrorFunc(cmd, err)
			}
			cmd.SetContext(ctx)
			return nil
		},

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},

		SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
		SilenceUsage:  true, // our FlagErrorFunc will handle it
	}
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
	argparser.PersistentFlags().StringVar(&logLevel, "log-level", cliutil.DefaultLogLevel,
		"Log at `LEVEL` (error, warn, info, debug or trace) to stderr")

	for _, register := range subcommands {
		register(argparser)
	}
	return argparser
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	argparser := newArgparser()
	argparser.SetArgs(args)
	argparser.SetIn(stdin)
	argparser.SetOut(stdout)
	argparser.SetErr(stderr)
	return cliutil.ReportError(argparser, argparser.ExecuteContext(ctx))
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
