// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline2

import (
	"flag"
	"fmt"
)

// style describes the formatting style used for help output.
type style int

const (
	styleCompact style = iota
	styleFull
	styleGoDoc
)

// defaultWidth is the help wrap width used when CMDLINE_WIDTH is unset, zero
// or unparsable and the user hasn't overridden -width.  The terminal width is
// not consulted.
const defaultWidth = 80

func (s *style) Set(v string) error {
	switch v {
	case "compact":
		*s = styleCompact
	case "full":
		*s = styleFull
	case "godoc":
		*s = styleGoDoc
	default:
		return fmt.Errorf("unknown style %q, must be compact, full or godoc", v)
	}
	return nil
}

func (s *style) Get() interface{} {
	return *s
}

func (s *style) String() string {
	switch *s {
	case styleCompact:
		return "compact"
	case styleFull:
		return "full"
	case styleGoDoc:
		return "godoc"
	default:
		return "compact"
	}
}

// globalFlags holds the flags registered on flag.CommandLine at the time
// help is rendered; cmdline2 treats these as available to every command.
var globalFlags = flag.CommandLine
