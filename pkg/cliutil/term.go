// Copyright (C) 2020  Ambassador Labs (for Telepresence)
// Copyright (C) 2021  Ambassador Labs (for ocibuild)
// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0
//
// Based on
// https://github.com/telepresenceio/telepresence/blob/b6dfa04ff014915b47386191cc3d8b1352522fea/pkg/client/cli/command_group.go#L35-L63

package cliutil

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

const fallbackWidth = 80

// GetTerminalWidth returns the width that help text should be wrapped to, or 0 for "don't wrap".
func GetTerminalWidth() int {
	return terminalWidth(os.Getenv("COLUMNS"), int(os.Stdout.Fd()))
}

func terminalWidth(columns string, fd int) int {
	// COLUMNS wins if the shell or user sets it.  COLUMNS=0 turns wrapping off.
	if cols, err := strconv.Atoi(columns); err == nil && cols >= 0 {
		return cols
	}

	if cols, _, err := term.GetSize(fd); err == nil {
		return cols
	}

	// A terminal that won't tell us its size.
	if term.IsTerminal(fd) {
		return fallbackWidth
	}

	// Not a terminal (output is piped in to a release script); don't wrap.
	return 0
}
