// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

//nolint:gochecknoglobals // Would be 'const'.
var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// DumpList renders one item per line, numbered, so that a unified diff points at the exact
// position that differs.
func DumpList(items []string) string {
	var ret strings.Builder
	for i, item := range items {
		fmt.Fprintf(&ret, "%3d %q\n", i, item)
	}
	return ret.String()
}

// AssertEqualLists is like assert.Equal for ordered lists of strings, but reports a unified
// diff of the two listings, which is much easier to read for long version lists.
func AssertEqualLists(t *testing.T, exp, act []string) bool {
	t.Helper()
	expStr := DumpList(exp)
	actStr := DumpList(act)
	if expStr == actStr {
		return true
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expStr),
		B:        difflib.SplitLines(actStr),
		FromFile: "Expected",
		FromDate: "",
		ToFile:   "Actual",
		ToDate:   "",
		Context:  1,
	})
	t.Errorf("List diff:\n%s", diff)
	return false
}

// Dump is a deterministic, method-free dump of a value for failure messages.
func Dump(val interface{}) string {
	return spewConfig.Sdump(val)
}
