// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package forkver

import (
	"math/big"
	"strings"
)

// Number is a non-negative base-10 integer of any size, held as its ASCII digits.  Parsing
// strips leading zeros, so the zero value is 0 and two parsed Numbers are == exactly when they
// are numerically equal.  A Number built by conversion may keep leading zeros; Cmp and String
// still treat it by value.
type Number string

func parseNumber(digits string) Number {
	return Number(strings.TrimLeft(digits, "0"))
}

func (n Number) digits() string {
	return strings.TrimLeft(string(n), "0")
}

// IsZero reports whether n is 0.
func (n Number) IsZero() bool {
	return n.digits() == ""
}

// String implements fmt.Stringer.
func (n Number) String() string {
	if n.IsZero() {
		return "0"
	}
	return n.digits()
}

// Cmp returns a number < 0 if n < m, > 0 if n > m, or 0 if they are equal.
func (n Number) Cmp(m Number) int {
	a, b := n.digits(), m.digits()
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}

// Inc returns n+1.
func (n Number) Inc() Number {
	var i big.Int
	if _, ok := i.SetString(n.String(), 10); !ok {
		panic("forkver.Number.Inc: not a decimal number: " + string(n))
	}
	return Number(i.Add(&i, big.NewInt(1)).String())
}
