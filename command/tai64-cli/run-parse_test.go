// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tai64/fault"
)

func TestParseLabel(t *testing.T) {
	r, err := parseLabel("4611686018427387914")
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "tai64", r.Type, "wrong type")
	assert.Equal(t, "400000000000000a", r.Hex, "wrong hex")

	r, err = parseLabel("4611686018427387904.999999999")
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "tai64n", r.Type, "wrong type")
	assert.Equal(t, "40000000000000003b9ac9ff", r.Hex, "wrong hex")

	r, err = parseLabel("4611686018427387903.000000000000000001")
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "tai64na", r.Type, "wrong type")
	assert.Equal(t, "3fffffffffffffff0000000000000001", r.Hex, "wrong hex")

	_, err = parseLabel("1.5")
	assert.Equal(t, ErrFractionWidth, err, "wrong error")

	_, err = parseLabel("fish")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class: %v", err)
}
