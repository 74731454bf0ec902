// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlog

import (
	"strconv"
)

// Level specifies a level of verbosity for V logs, in the style of the
// original vlog.Level (itself a thin wrapper over llog.Level).  Higher
// levels are more verbose; V(n) reports true once the configured level is
// >= n.
type Level int32

// Set is part of the flag.Value interface, so a Level can be used
// directly as a cmdline2 flag value.
func (l *Level) Set(v string) error {
	i, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return err
	}
	*l = Level(i)
	return nil
}

// Get is part of the flag.Getter interface.
func (l *Level) Get() interface{} {
	return *l
}

// String is part of the flag.Value interface.
func (l *Level) String() string {
	return strconv.FormatInt(int64(*l), 10)
}
