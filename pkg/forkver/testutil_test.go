// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package forkver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yolziii/piii-release/pkg/forkver"
)

func mustParseVersion(t *testing.T, str string) forkver.Version {
	t.Helper()
	ver, err := forkver.ParseVersion(str)
	require.NoError(t, err)
	return ver
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
