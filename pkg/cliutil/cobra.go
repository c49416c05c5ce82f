// Copyright (C) 2020  Ambassador Labs (for Telepresence)
// Copyright (C) 2021-2022  Ambassador Labs (for ocibuild)
// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0
//
// Contains code from
// https://github.com/telepresenceio/telepresence/blob/3b63073ceafae6b548c664a83f7ac90497eab2ae/pkg/client/cli/command.go

package cliutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// UsageError is an error in how the program was invoked, as opposed to an error while running a
// command that was invoked correctly.
type UsageError struct {
	Cmd *cobra.Command
	// Err may be nil if the problem has already been explained to the user (by printing the help
	// text).
	Err error
}

func (e *UsageError) Error() string {
	if e.Err == nil {
		return "invalid usage"
	}
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// OnlySubcommands is a cobra.PositionalArgs that is similar to cobra.NoArgs, but prints a better
// error message.
func OnlySubcommands(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		err := fmt.Errorf("invalid subcommand %q", args[0])

		if cmd.SuggestionsMinimumDistance <= 0 {
			cmd.SuggestionsMinimumDistance = 2
		}
		if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
			err = fmt.Errorf("%w\nDid you mean one of these?\n\t%s", err, strings.Join(suggestions, "\n\t"))
		}

		return cmd.FlagErrorFunc()(cmd, err)
	}
	return nil
}

// WrapPositionalArgs wraps a cobra.PositionalArgs to have it pass any errors through FlagErrorFunc,
// in order to have more consistent bad-usage reporting.
func WrapPositionalArgs(inner cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return FlagErrorFunc(cmd, inner(cmd, args))
	}
}

// RunSubcommands is for use as a cobra.Command.RunE for commands that don't do anything themselves
// but have subcommands.  It prints the help text to stderr and returns a UsageError, so that
// running the bare command is not treated as success.
func RunSubcommands(cmd *cobra.Command, args []string) error {
	cmd.SetOut(cmd.ErrOrStderr())
	cmd.HelpFunc()(cmd, args)
	return &UsageError{Cmd: cmd}
}

// FlagErrorFunc is a function to be passed to (*cobra.Command).SetFlagErrorFunc that turns invalid
// flag usage in to a *UsageError, for ReportError to report GNU-style.
func FlagErrorFunc(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return err
	}
	return &UsageError{Cmd: cmd, Err: err}
}

// ReportError writes err (as returned from (*cobra.Command).Execute) to the command's stderr, and
// returns the exit code that the program should exit with: 0 if err is nil, 2 for a UsageError,
// and 1 for anything else.
func ReportError(cmd *cobra.Command, err error) int {
	if err == nil {
		return 0
	}

	var uerr *UsageError
	if !errors.As(err, &uerr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: error: %v\n", cmd.CommandPath(), err)
		return 1
	}
	if uerr.Err == nil {
		return 2
	}
	errCmd := uerr.Cmd
	if errCmd == nil {
		errCmd = cmd
	}

	// If the error is multiple lines, include an extra blank line before the "See --help" line.
	errStr := strings.TrimRight(uerr.Err.Error(), "\n")
	if strings.Contains(errStr, "\n") {
		errStr += "\n"
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\nSee '%s --help' for more information.\n",
		errCmd.CommandPath(), errStr, errCmd.CommandPath())
	return 2
}
