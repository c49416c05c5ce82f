// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package forkver

import (
	"regexp"
)

// ForkVersion builds "<base>-piii.<n>".
func ForkVersion(base string, n Number) string {
	return base + "-" + ForkTagPrefix + n.String()
}

// MaxForkCounter returns the highest n for which "<base>-piii.<n>" appears in published, or 0
// if none does.  Entries of any other shape are ignored.  Counters are compared by value with
// no upper bound.
func MaxForkCounter(base string, published []string) Number {
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `-piii\.(\d+)$`)
	var maxN Number
	for _, str := range published {
		match := re.FindStringSubmatch(str)
		if match == nil {
			continue
		}
		if n := parseNumber(match[1]); n.Cmp(maxN) > 0 {
			maxN = n
		}
	}
	return maxN
}

// NextForkVersion returns the first fork version of 'base' that is newer than every fork
// version of 'base' in published.  published may hold anything ever published for the
// package, in any order and with duplicates.
func NextForkVersion(base string, published []string) string {
	return ForkVersion(base, MaxForkCounter(base, published).Inc())
}
