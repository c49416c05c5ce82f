// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package versionlist decodes the lists of published versions that a package registry reports,
// such as the output of `npm view PKG versions --json`.
package versionlist

import (
	"bytes"
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"
	"sigs.k8s.io/yaml"
)

// Parse decodes a list of version strings.  The input may be a JSON array of strings, a YAML
// sequence of strings, or a single string (npm prints a bare string rather than an array when
// only one version has been published).  Empty input (or `null`) is an empty list.
//
// Parse does not validate the versions themselves; that is up to the consumer.
func Parse(data []byte) ([]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("versionlist.Parse: %w", err)
	}
	switch raw := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{raw}, nil
	case []interface{}:
		ret := make([]string, 0, len(raw))
		for i, item := range raw {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("versionlist.Parse: entry %d: expected a string, got %T: %v",
					i, item, item)
			}
			ret = append(ret, str)
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("versionlist.Parse: expected a list of strings, got %T", raw)
	}
}

// Unique returns the distinct strings of the list, in byte order.  Versions are compared as
// exact strings, so "01.0.0" and "1.0.0" are both kept.
func Unique(strs []string) []string {
	return sets.NewString(strs...).List()
}
