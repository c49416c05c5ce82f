// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	Code   int
	Stdout string
	Stderr string
}

func runMain(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	ctx := dlog.NewTestContext(t, true)
	var stdout, stderr strings.Builder
	code := run(ctx, args, strings.NewReader(stdin), &stdout, &stderr)
	return result{
		Code:   code,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
}

func TestCommands(t *testing.T) {
	t.Parallel()
	type testcase struct {
		Args   []string
		Stdin  string
		Code   int
		Stdout string
		// Stderr is a substring that must appear in stderr.
		Stderr string
	}
	testcases := map[string]testcase{
		"compare-newer": {
			Args:   []string{"compare", "0.51.1", "0.51.0-piii.1"},
			Stdout: "1\n",
		},
		"compare-older": {
			Args:   []string{"compare", "0.51.0-piii.9", "0.51.0-piii.10"},
			Stdout: "-1\n",
		},
		"compare-equal": {
			Args:   []string{"compare", "0.51.0-piii.1", "0.51.0-piii.1"},
			Stdout: "0\n",
		},
		"compare-invalid": {
			Args:   []string{"compare", "0.51", "0.51.0"},
			Code:   1,
			Stderr: "piii-release: error: forkver.Compare: invalid version format: \"0.51\"\n",
		},
		"compare-args": {
			Args:   []string{"compare", "0.51.0"},
			Code:   2,
			Stderr: "piii-release compare: accepts 2 arg(s), received 1\nSee 'piii-release compare --help' for more information.\n",
		},
		"next-args": {
			Args:   []string{"next", "0.51.0", "0.51.0-piii.1", "0.51.0-piii.2", "0.51.1-piii.5"},
			Stdout: "0.51.0-piii.3\n",
			Stderr: "next fork version: 0.51.0-piii.3",
		},
		"next-stdin": {
			Args:   []string{"next", "--published=-", "0.51.0-piii.7"},
			Stdin:  `["0.50.0", "0.51.0", "0.51.0-piii.1"]`,
			Stdout: "0.51.0-piii.2\n",
			Stderr: "local base version: 0.51.0",
		},
		"next-huge-counter": {
			Args:   []string{"next", "--published=-", "0.51.0"},
			Stdin:  `["0.51.0-piii.3", "0.51.0-piii.99999999999999999999"]`,
			Stdout: "0.51.0-piii.100000000000000000000\n",
			Stderr: "latest published fork version: 0.51.0-piii.99999999999999999999",
		},
		"next-single-published": {
			Args:   []string{"next", "-p", "-", "0.51.0"},
			Stdin:  `"0.51.0-piii.4"`,
			Stdout: "0.51.0-piii.5\n",
		},
		"next-tag": {
			Args:   []string{"next", "--tag", "0.51.0"},
			Stdout: "v0.51.0-piii.1\n",
		},
		"next-bad-base": {
			Args:   []string{"next", "latest"},
			Code:   1,
			Stderr: "forkver.BaseVersion: unsupported version format: \"latest\"",
		},
		"next-bad-list": {
			Args:   []string{"next", "--published=-", "0.51.0"},
			Stdin:  `{"latest": "0.51.0"}`,
			Code:   1,
			Stderr: "read version list -: versionlist.Parse: expected a list of strings",
		},
		"sort": {
			Args:   []string{"sort", "0.51.0-piii.10", "0.51.1", "0.51.0", "0.51.0-piii.9"},
			Stdout: "0.51.0\n0.51.0-piii.9\n0.51.0-piii.10\n0.51.1\n",
		},
		"sort-reverse-unique": {
			Args:   []string{"sort", "-r", "-u", "--published=-", "1.0.0"},
			Stdin:  "- 0.51.0\n- 1.0.0\n- 0.51.0-piii.1\n",
			Stdout: "1.0.0\n0.51.0-piii.1\n0.51.0\n",
		},
		"sort-empty": {
			Args:   []string{"sort"},
			Stdout: "",
		},
		"sort-invalid": {
			Args:   []string{"sort", "1.0.0", "one", "two"},
			Code:   1,
			Stderr: "forkver.Sort:",
		},
		"latest": {
			Args:   []string{"latest", "0.51.0", "0.51.0-piii.10", "0.51.0-piii.9"},
			Stdout: "0.51.0-piii.10\n",
		},
		"latest-none": {
			Args:   []string{"latest"},
			Code:   1,
			Stderr: "piii-release: error: forkver.Latest: no versions\n",
		},
		"check-upstream-update": {
			Args:   []string{"check", "0.51.0-piii.1", "0.51.1"},
			Stdout: "true\n",
			Stderr: "update available: 0.51.0-piii.1 -> 0.51.1",
		},
		"check-up-to-date": {
			Args:   []string{"check", "0.51.0-piii.2", "0.51.0-piii.1"},
			Stdout: "false\n",
		},
		"check-published": {
			Args:   []string{"check", "--published=-", "0.51.0-piii.1"},
			Stdin:  `["0.50.0", "0.51.0", "0.51.0-piii.1", "0.51.0-piii.2"]`,
			Stdout: "true\n",
			Stderr: "latest published version: 0.51.0-piii.2",
		},
		"check-both": {
			Args:   []string{"check", "--published=-", "0.51.0", "0.51.1"},
			Code:   2,
			Stderr: "piii-release check: LATEST and --published are mutually exclusive\n",
		},
		"check-neither": {
			Args:   []string{"check", "0.51.0"},
			Code:   2,
			Stderr: "piii-release check: either LATEST or --published is required\n",
		},
		"tag": {
			Args:   []string{"tag", "0.51.0-piii.1"},
			Stdout: "v0.51.0-piii.1\n",
		},
		"tag-invalid": {
			Args:   []string{"tag", "0.51.0-piii.01"},
			Code:   1,
			Stderr: "is not a valid semver tag",
		},
		"base": {
			Args:   []string{"base", "0.51.0-piii.3"},
			Stdout: "0.51.0\n",
		},
		"parse-json": {
			Args: []string{"parse", "--output=json", "0.51.0-piii.2", "1.0.0"},
			Stdout: "" +
				"[\n" +
				"  {\n" +
				"    \"version\": \"0.51.0-piii.2\",\n" +
				"    \"major\": 0,\n" +
				"    \"minor\": 51,\n" +
				"    \"patch\": 0,\n" +
				"    \"prerelease\": \"piii.2\",\n" +
				"    \"stable\": false,\n" +
				"    \"forkCounter\": 2\n" +
				"  },\n" +
				"  {\n" +
				"    \"version\": \"1.0.0\",\n" +
				"    \"major\": 1,\n" +
				"    \"minor\": 0,\n" +
				"    \"patch\": 0,\n" +
				"    \"stable\": true\n" +
				"  }\n" +
				"]\n",
		},
		"parse-json-huge": {
			Args: []string{"parse", "-o", "json", "99999999999999999999.0.0-piii.100000000000000000000"},
			Stdout: "" +
				"[\n" +
				"  {\n" +
				"    \"version\": \"99999999999999999999.0.0-piii.100000000000000000000\",\n" +
				"    \"major\": 99999999999999999999,\n" +
				"    \"minor\": 0,\n" +
				"    \"patch\": 0,\n" +
				"    \"prerelease\": \"piii.100000000000000000000\",\n" +
				"    \"stable\": false,\n" +
				"    \"forkCounter\": 100000000000000000000\n" +
				"  }\n" +
				"]\n",
		},
		"parse-bad-format": {
			Args:   []string{"parse", "-o", "xml", "1.0.0"},
			Code:   2,
			Stderr: `invalid argument "xml" for "-o, --output" flag: must be one of "yaml" or "json"`,
		},
		"bad-subcommand": {
			Args:   []string{"nxt"},
			Code:   2,
			Stderr: "piii-release: invalid subcommand \"nxt\"\nDid you mean one of these?\n\tnext\n",
		},
		"bad-log-level": {
			Args:   []string{"--log-level=loud", "tag", "1.0.0"},
			Code:   2,
			Stderr: "piii-release tag: invalid log level",
		},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			res := runMain(t, tc.Stdin, tc.Args...)
			assert.Equal(t, tc.Code, res.Code, "stderr: %s", res.Stderr)
			assert.Equal(t, tc.Stdout, res.Stdout)
			assert.Contains(t, res.Stderr, tc.Stderr)
		})
	}
}

func TestParseYAML(t *testing.T) {
	t.Parallel()
	res := runMain(t, "", "parse", "0.51.0-piii.2", "1.0.0-alpha")
	require.Equal(t, 0, res.Code, res.Stderr)
	assert.Contains(t, res.Stdout, "- version: 0.51.0-piii.2\n")
	assert.Contains(t, res.Stdout, "  prerelease: piii.2\n")
	assert.Contains(t, res.Stdout, "  forkCounter: 2\n")
	assert.Contains(t, res.Stdout, "  prerelease: alpha\n")
	assert.Equal(t, 1, strings.Count(res.Stdout, "forkCounter"))

	res = runMain(t, "", "parse", "99999999999999999999.0.0-piii.100000000000000000000")
	require.Equal(t, 0, res.Code, res.Stderr)
	assert.Contains(t, res.Stdout, "  major: \"99999999999999999999\"\n")
	assert.Contains(t, res.Stdout, "  minor: 0\n")
	assert.Contains(t, res.Stdout, "  forkCounter: \"100000000000000000000\"\n")
}

func TestLogLevel(t *testing.T) {
	t.Parallel()
	res := runMain(t, "", "--log-level=warn", "next", "0.51.0")
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, "0.51.0-piii.1\n", res.Stdout)
	assert.Equal(t, "", res.Stderr)

	res = runMain(t, "", "--log-level=debug", "sort", "--unique", "1.0.0", "1.0.0")
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, "1.0.0\n", res.Stdout)
	assert.Contains(t, res.Stderr, "dropped 1 duplicate versions")
}

func TestPublishedFile(t *testing.T) {
	t.Parallel()
	filename := filepath.Join(t.TempDir(), "versions.json")
	require.NoError(t, os.WriteFile(filename, []byte(`["0.51.0-piii.1", "0.51.0-piii.2"]`), 0o644))

	res := runMain(t, "", "next", "--published", filename, "0.51.0")
	assert.Equal(t, 0, res.Code, res.Stderr)
	assert.Equal(t, "0.51.0-piii.3\n", res.Stdout)

	res = runMain(t, "", "next", "--published", filepath.Join(t.TempDir(), "missing.json"), "0.51.0")
	assert.Equal(t, 1, res.Code)
	assert.Contains(t, res.Stderr, "missing.json")
}

func TestHelp(t *testing.T) {
	t.Parallel()
	res := runMain(t, "", "--help")
	assert.Equal(t, 0, res.Code)
	for _, name := range []string{"base", "check", "compare", "latest", "next", "parse", "sort", "tag"} {
		assert.Contains(t, res.Stdout, "\n  "+name+" ")
	}

	res = runMain(t, "")
	assert.Equal(t, 2, res.Code)
	assert.Equal(t, "", res.Stdout)
	assert.Contains(t, res.Stderr, "Available Commands:")
}
