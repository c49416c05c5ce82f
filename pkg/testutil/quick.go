// Copyright (C) 2021  Ambassador Labs
// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

// QuickCheck is similar to testing/quick.Check, but also feeds each of the static testcases to
// fn.  Each testcase is the full argument list for one call.
func QuickCheck(t *testing.T, fn interface{}, cfg quick.Config, testcases ...[]interface{}) {
	t.Helper()
	err := quick.Check(fn, &cfg)
	assert.NoError(t, err)
	var setupErr quick.SetupError
	if errors.As(err, &setupErr) {
		return
	}

	fnVal := reflect.ValueOf(fn)
	for i, tc := range testcases {
		args, ok := staticArgs(t, fnVal, i, tc)
		if !ok {
			continue
		}
		if !fnVal.Call(args)[0].Bool() {
			assert.NoError(t, fmt.Errorf("static%w", &quick.CheckError{
				Count: i + 1,
				In:    toInterfaces(args),
			}))
		}
	}
}

// QuickCheckEqual is similar to testing/quick.CheckEqual, but also feeds each of the static
// testcases to both functions.
func QuickCheckEqual(t *testing.T, fn1, fn2 interface{}, cfg quick.Config, testcases ...[]interface{}) {
	t.Helper()
	err := quick.CheckEqual(fn1, fn2, &cfg)
	assert.NoError(t, err)
	var setupErr quick.SetupError
	if errors.As(err, &setupErr) {
		return
	}

	fn1Val := reflect.ValueOf(fn1)
	fn2Val := reflect.ValueOf(fn2)
	for i, tc := range testcases {
		args, ok := staticArgs(t, fn1Val, i, tc)
		if !ok {
			continue
		}
		ret1 := toInterfaces(fn1Val.Call(args))
		ret2 := toInterfaces(fn2Val.Call(args))
		if !reflect.DeepEqual(ret1, ret2) {
			assert.NoError(t, fmt.Errorf("static%w", &quick.CheckEqualError{
				CheckError: quick.CheckError{
					Count: i + 1,
					In:    toInterfaces(args),
				},
				Out1: ret1,
				Out2: ret2,
			}))
		}
	}
}

func staticArgs(t *testing.T, fnVal reflect.Value, i int, tc []interface{}) ([]reflect.Value, bool) {
	t.Helper()
	if len(tc) != fnVal.Type().NumIn() {
		t.Errorf("static#%d has %d args, but the function takes %d args",
			i, len(tc), fnVal.Type().NumIn())
		return nil, false
	}
	args := make([]reflect.Value, len(tc))
	for j := range args {
		args[j] = reflect.ValueOf(tc[j])
	}
	return args, true
}

// Statics turns a list of single-argument inputs in to testcases for QuickCheck.
func Statics(inputs ...interface{}) [][]interface{} {
	ret := make([][]interface{}, len(inputs))
	for i := range inputs {
		ret[i] = []interface{}{inputs[i]}
	}
	return ret
}

func toInterfaces(values []reflect.Value) []interface{} {
	ret := make([]interface{}, len(values))
	for i, val := range values {
		ret[i] = val.Interface()
	}
	return ret
}

type QuickConfig = quick.Config
