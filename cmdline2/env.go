// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline2

import (
	"fmt"
	"io"
	"os"
)

// Env represents the environment for command execution.  Values are
// initialized from the underlying operating system by NewEnv, but may be
// overridden, which is useful for tests.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Usage, if set, is invoked to print a usage message for the command
	// tree rooted at the command whose Run method is running.  Parse sets
	// this field on the Env it's given before calling into the root
	// command; UsageErrorf prints a bare "usage error" line when it is nil.
	Usage func(io.Writer)

	styleFlag style
	widthFlag int
}

// NewEnv returns a new Env initialized from the underlying operating
// system: Stdin, Stdout and Stderr are connected to the process streams,
// and the help style and width are seeded from the CMDLINE_STYLE and
// CMDLINE_WIDTH environment variables.
func NewEnv() *Env {
	env := &Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if v := os.Getenv("CMDLINE_STYLE"); v != "" {
		env.styleFlag.Set(v)
	}
	if v := os.Getenv("CMDLINE_WIDTH"); v != "" {
		if n, err := parseWidth(v); err == nil {
			env.widthFlag = n
		}
	}
	return env
}

func parseWidth(v string) (int, error) {
	var n int
	_, err := fmt.Sscanf(v, "%d", &n)
	return n, err
}

// style returns the configured help style, defaulting to compact.
func (env *Env) style() style {
	return env.styleFlag
}

// width returns the configured help wrap width.  A negative value means
// unlimited; callers fall back to defaultWidth when a visual width is
// required regardless of the "unlimited" request.
func (env *Env) width() int {
	if env.widthFlag == 0 {
		return defaultWidth
	}
	return env.widthFlag
}

// UsageErrorf prints the given error message to env.Stderr, followed by a
// blank line and the usage information from env.Usage (or "usage error" if
// env.Usage is nil).  Returns ErrUsage so that callers can
// write "return env.UsageErrorf(...)" for usage errors.
func (env *Env) UsageErrorf(format string, args ...interface{}) error {
	return usageErrorf(env.Stderr, env.Usage, format, args...)
}

// usageErrorf is the shared implementation behind Env.UsageErrorf; help.go
// also calls it directly when it already has a more specific usage func in
// hand (e.g. while rendering help for a sub-command).
func usageErrorf(stderr io.Writer, usage func(io.Writer), format string, args ...interface{}) error {
	if stderr != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n\n", fmt.Sprintf(format, args...))
		if usage != nil {
			usage(stderr)
		} else {
			fmt.Fprint(stderr, "usage error\n")
		}
	}
	return ErrUsage
}
