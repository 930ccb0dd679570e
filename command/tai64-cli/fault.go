// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/tai64/fault"
)

// common errors - keep in alphabetic order
const (
	ErrCountNotUnsigned   = fault.InvalidError("count is not an unsigned integer")
	ErrFractionWidth      = fault.InvalidError("fraction must be 9 or 18 digits")
	ErrNeedTwoLabels      = fault.InvalidError("compare needs exactly two labels")
	ErrNoArguments        = fault.InvalidError("no arguments")
	ErrTooManyArguments   = fault.InvalidError("too many arguments")
	ErrUnknownLabelLength = fault.InvalidError("hex length does not match any label type")
	ErrUnknownLabelType   = fault.InvalidError("label type must be tai64, tai64n or tai64na")
)
