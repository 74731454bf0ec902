// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package envvar reads the small set of environment-derived tunables the
// synchronization engine and its demo CLI use, following the same
// "parse, fall back to a compiled default, silently ignore garbage"
// idiom the original envvar package used for path lookups.
package envvar

import (
	"os"
	"strconv"
)

// Names of the environment variables consulted by Int and String below.
const (
	SpinAttemptsVar  = "SYNCHCORE_SPIN_ATTEMPTS"
	DefaultReasonVar = "SYNCHCORE_DEFAULT_REASON"
	LogLevelVar      = "SYNCHCORE_LOG_LEVEL"
)

// Int returns the integer value of the environment variable name, or
// def if the variable is unset or does not parse as an integer.
func Int(name string, def int) int {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// String returns the value of the environment variable name, or def if
// the variable is unset.
func String(name, def string) string {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	return v
}
