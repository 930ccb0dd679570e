// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Errors fall into three classes: invalid errors for input that is
// not integral at all, decode errors for buffers and hex text that
// cannot supply a whole label, and range errors for integral counts
// outside their field limits.  A range error records the field name
// and the rejected value; it is the same error whether the count came
// from a constructor or from decoded wire bytes.
package fault
