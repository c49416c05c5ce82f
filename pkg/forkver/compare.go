// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package forkver

import (
	"fmt"
	"strings"
)

func cmpBase(a, b Version) int {
	aBase, bBase := a.Base(), b.Base()
	for i := range aBase {
		if diff := aBase[i].Cmp(bBase[i]); diff != 0 {
			return diff
		}
	}
	return 0
}

// cmpPrerelease orders two prereleases of the same base.  Having a prerelease is newer than not
// having one, because fork builds come after the upstream release they are cut from.
func cmpPrerelease(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "" && b != "":
		return -1
	case a != "" && b == "":
		return 1
	}
	aN, aOK := forkCounter(a)
	bN, bOK := forkCounter(b)
	if aOK && bOK {
		return aN.Cmp(bN)
	}
	return strings.Compare(a, b)
}

// Cmp returns a number < 0 if version 'a' is older than version 'b', > 0 if 'a' is newer than
// 'b', or 0 if they are equal.  Like the C-language strcmp, only the sign is defined.
func (a Version) Cmp(b Version) int {
	if d := cmpBase(a, b); d != 0 {
		return d
	}
	return cmpPrerelease(a.Prerelease, b.Prerelease)
}

// Compare parses both strings and returns a.Cmp(b).
func Compare(a, b string) (int, error) {
	aVer, err := ParseVersion(a)
	if err != nil {
		return 0, fmt.Errorf("forkver.Compare: %w", err)
	}
	bVer, err := ParseVersion(b)
	if err != nil {
		return 0, fmt.Errorf("forkver.Compare: %w", err)
	}
	return aVer.Cmp(bVer), nil
}

// UpdateAvailable reports whether 'latest' is strictly newer than 'current'.
func UpdateAvailable(current, latest string) (bool, error) {
	d, err := Compare(latest, current)
	if err != nil {
		return false, err
	}
	return d > 0, nil
}
