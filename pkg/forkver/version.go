// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package forkver

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ForkTagPrefix is what every fork prerelease starts with.
const ForkTagPrefix = "piii."

//nolint:gochecknoglobals // Would be 'const'.
var (
	reVersion = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-(.+))?$`)
	reForkTag = regexp.MustCompile(`^piii\.(\d+)$`)
	reBase    = regexp.MustCompile(`^(\d+\.\d+\.\d+)`)
)

// ErrInvalidVersionFormat is matched (with errors.Is) by every *InvalidVersionFormatError.
var ErrInvalidVersionFormat = errors.New("invalid version format")

// InvalidVersionFormatError is returned for a string that is not a version.
type InvalidVersionFormatError struct {
	Input string
}

func (e *InvalidVersionFormatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidVersionFormat, e.Input)
}

func (e *InvalidVersionFormatError) Is(target error) bool {
	return target == ErrInvalidVersionFormat
}

// Version is a parsed release number.  The zero Prerelease means "no prerelease"; the grammar
// does not permit an empty one.
type Version struct {
	Major      Number
	Minor      Number
	Patch      Number
	Prerelease string
}

// ParseVersion parses "MAJOR.MINOR.PATCH" optionally followed by "-PRERELEASE".  No
// normalization is performed beyond dropping leading zeros from the numbers; there is no "v"
// prefix and no build metadata.  Numbers may have any number of digits.
func ParseVersion(str string) (Version, error) {
	match := reVersion.FindStringSubmatch(str)
	if match == nil {
		return Version{}, &InvalidVersionFormatError{Input: str}
	}
	return Version{
		Major:      parseNumber(match[1]),
		Minor:      parseNumber(match[2]),
		Patch:      parseNumber(match[3]),
		Prerelease: match[4],
	}, nil
}

// MustParseVersion is like ParseVersion, but panics on error.  Only use it with literal
// strings.
func MustParseVersion(str string) Version {
	ver, err := ParseVersion(str)
	if err != nil {
		panic(fmt.Errorf("forkver.MustParseVersion: %w", err))
	}
	return ver
}

// Base returns the (major, minor, patch) triple.
func (ver Version) Base() [3]Number {
	return [3]Number{ver.Major, ver.Minor, ver.Patch}
}

// BaseString returns "MAJOR.MINOR.PATCH" without any prerelease.
func (ver Version) BaseString() string {
	return fmt.Sprintf("%s.%s.%s", ver.Major, ver.Minor, ver.Patch)
}

// IsStable reports whether the version has no prerelease.
func (ver Version) IsStable() bool {
	return ver.Prerelease == ""
}

// ForkCounter returns n if the prerelease is exactly "piii.<n>".
func (ver Version) ForkCounter() (Number, bool) {
	return forkCounter(ver.Prerelease)
}

// IsFork reports whether the prerelease is a "piii.<n>" fork tag.
func (ver Version) IsFork() bool {
	_, ok := ver.ForkCounter()
	return ok
}

func forkCounter(prerelease string) (Number, bool) {
	match := reForkTag.FindStringSubmatch(prerelease)
	if match == nil {
		return "", false
	}
	return parseNumber(match[1]), true
}

// String implements fmt.Stringer.
func (ver Version) String() string {
	var ret strings.Builder
	ret.WriteString(ver.BaseString())
	if ver.Prerelease != "" {
		ret.WriteByte('-')
		ret.WriteString(ver.Prerelease)
	}
	return ret.String()
}

// GoString implements fmt.GoStringer.
func (ver Version) GoString() string {
	return fmt.Sprintf("forkver.Version{Major:%q, Minor:%q, Patch:%q, Prerelease:%q}",
		string(ver.Major), string(ver.Minor), string(ver.Patch), ver.Prerelease)
}

// BaseVersion returns the leading "MAJOR.MINOR.PATCH" of a package manifest's version field,
// dropping whatever follows it.
func BaseVersion(str string) (string, error) {
	match := reBase.FindStringSubmatch(str)
	if match == nil {
		return "", fmt.Errorf("forkver.BaseVersion: unsupported version format: %q", str)
	}
	return match[1], nil
}
