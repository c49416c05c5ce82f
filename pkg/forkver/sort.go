// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package forkver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/datawire/dlib/derror"
)

// parsedVersion keeps the input string, since String() does not reproduce leading zeros.
type parsedVersion struct {
	str string
	ver Version
}

func parseAll(strs []string) ([]parsedVersion, error) {
	vers := make([]parsedVersion, 0, len(strs))
	var errs derror.MultiError
	for i, str := range strs {
		ver, err := ParseVersion(str)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		vers = append(vers, parsedVersion{str: str, ver: ver})
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return vers, nil
}

// Sort returns the versions ordered oldest-first.  Versions that compare equal keep their
// relative order.  If any entry does not parse, all of the bad entries are reported and no list
// is returned.
func Sort(strs []string) ([]string, error) {
	vers, err := parseAll(strs)
	if err != nil {
		return nil, fmt.Errorf("forkver.Sort: %w", err)
	}
	sort.SliceStable(vers, func(i, j int) bool {
		return vers[i].ver.Cmp(vers[j].ver) < 0
	})
	ret := make([]string, 0, len(vers))
	for _, ver := range vers {
		ret = append(ret, ver.str)
	}
	return ret, nil
}

// ErrNoVersions is returned by Latest for an empty list.
var ErrNoVersions = errors.New("no versions")

// Latest returns the newest of the versions.  Of several equal newest versions, the first one
// wins.
func Latest(strs []string) (string, error) {
	vers, err := parseAll(strs)
	if err != nil {
		return "", fmt.Errorf("forkver.Latest: %w", err)
	}
	if len(vers) == 0 {
		return "", fmt.Errorf("forkver.Latest: %w", ErrNoVersions)
	}
	latest := vers[0]
	for _, ver := range vers[1:] {
		if ver.ver.Cmp(latest.ver) > 0 {
			latest = ver
		}
	}
	return latest.str, nil
}
