// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import "errors"

var (
	ErrNegativeInterval = errors.New("ticks: negative label interval")
	ErrTickNumber       = errors.New("ticks: tick number must be at least 2")
)
