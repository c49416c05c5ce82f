// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/yolziii/piii-release/pkg/versionlist"
)

// readVersionList reads a list of versions (in any format that versionlist.Parse accepts) from
// the named file, or from stdin if the name is "-".
func readVersionList(cmd *cobra.Command, filename string) ([]string, error) {
	var bs []byte
	var err error
	if filename == "-" {
		bs, err = io.ReadAll(cmd.InOrStdin())
	} else {
		bs, err = os.ReadFile(filename)
	}
	if err != nil {
		return nil, err
	}
	list, err := versionlist.Parse(bs)
	if err != nil {
		return nil, &fs.PathError{
			Op:   "read version list",
			Path: filename,
			Err:  err,
		}
	}
	return list, nil
}

// collectVersions returns the versions given as arguments followed by the versions listed in
// the --published file (if any).
func collectVersions(cmd *cobra.Command, args []string, published string) ([]string, error) {
	ret := append([]string(nil), args...)
	if published != "" {
		list, err := readVersionList(cmd, published)
		if err != nil {
			return nil, err
		}
		ret = append(ret, list...)
	}
	return ret, nil
}

func addPublishedFlag(cmd *cobra.Command, published *string) {
	cmd.Flags().StringVarP(published, "published", "p", "",
		"Also read versions from `FILE`, a JSON or YAML list such as the output of "+
			"'npm view PKG versions --json'; '-' reads stdin")
}

// outputFormat is a pflag.Value for the --output flag.
type outputFormat string

const (
	outputYAML outputFormat = "yaml"
	outputJSON outputFormat = "json"
)

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Set(str string) error {
	switch outputFormat(str) {
	case outputYAML, outputJSON:
		*f = outputFormat(str)
		return nil
	default:
		return fmt.Errorf("must be one of %q or %q", outputYAML, outputJSON)
	}
}

func (f *outputFormat) Type() string {
	return "format"
}

var _ pflag.Value = (*outputFormat)(nil)

func (f outputFormat) write(out io.Writer, val interface{}) error {
	var bs []byte
	var err error
	switch f {
	case outputJSON:
		bs, err = json.MarshalIndent(val, "", "  ")
		if err != nil {
			return err
		}
		bs = append(bs, '\n')
	default:
		bs, err = yaml.Marshal(val)
		if err != nil {
			return err
		}
	}
	_, err = out.Write(bs)
	return err
}

func printLines(cmd *cobra.Command, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return err
		}
	}
	return nil
}
