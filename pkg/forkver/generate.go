// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package forkver

import (
	"math/rand"
	"reflect"
	"strconv"
	"testing/quick"
)

// hugeNumbers do not fit in 64 bits.
//
//nolint:gochecknoglobals // Would be 'const'.
var hugeNumbers = []string{"99999999999999999999", "100000000000000000000"}

func randNumber(rand *rand.Rand, n int) Number {
	if rand.Intn(16) == 0 {
		return parseNumber(hugeNumbers[rand.Intn(len(hugeNumbers))])
	}
	return parseNumber(strconv.Itoa(rand.Intn(n)))
}

// None of the opaqueWords start with "p", so a byte-wise comparison against any "piii.<n>" is
// decided by the first byte and generated prereleases of one base stay transitively ordered.
//
//nolint:gochecknoglobals // Would be 'const'.
var opaqueWords = []string{"alpha", "beta", "dev", "next", "rc"}

func (ver Version) generate(rand *rand.Rand, _ int) Version {
	ver.Major = randNumber(rand, 4)
	ver.Minor = randNumber(rand, 4)
	ver.Patch = randNumber(rand, 4)
	switch rand.Intn(3) {
	case 0:
		ver.Prerelease = ""
	case 1:
		ver.Prerelease = ForkTagPrefix + randNumber(rand, 20).String()
	case 2:
		ver.Prerelease = opaqueWords[rand.Intn(len(opaqueWords))]
		if rand.Intn(2) == 1 {
			ver.Prerelease += "." + strconv.Itoa(rand.Intn(20))
		}
	}
	return ver
}

// Generate implements testing/quick.Generator.  Numbers are mostly kept small so that random
// pairs often share a base and exercise the prerelease rules.
func (ver Version) Generate(rand *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(ver.generate(rand, size))
}

//nolint:exhaustivestruct
var _ quick.Generator = Version{}
