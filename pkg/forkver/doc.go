// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package forkver implements the version scheme used for releases of the piii fork.
//
// Fork releases reuse the upstream release number and add a prerelease counter:
//
//     <major>.<minor>.<patch>-piii.<n>
//
// Unlike semver precedence, a prerelease sorts AFTER the release it is attached to; a fork
// build is cut from an upstream release, so 1.0.0-piii.1 is newer than 1.0.0.  Fork counters
// compare numerically (piii.10 > piii.9), as do the base numbers, and neither has an upper
// bound.  Any other prerelease string is opaque and compares byte-wise against other
// prerelease strings.
package forkver
