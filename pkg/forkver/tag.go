// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package forkver

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// TagName returns the git tag that a release of the version is pushed as ("v" + version).
//
// The version must parse, and the tag must also be valid semver so that other tooling (npm,
// the Go module proxy) accepts it; that rules out prereleases like "1.0.0-a..b".
func TagName(version string) (string, error) {
	if _, err := ParseVersion(version); err != nil {
		return "", fmt.Errorf("forkver.TagName: %w", err)
	}
	tag := "v" + version
	if !semver.IsValid(tag) {
		return "", fmt.Errorf("forkver.TagName: %q is not a valid semver tag", tag)
	}
	return tag, nil
}
