// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vlog provides leveled logging for the synchronization engine
// and its collaborators: a single process-wide Logger plus package-level
// Info/Error/Fatal convenience functions, and a V(level) gate for verbose
// tracing.
//
// Earlier versions of this package wrapped a glog-style backend with file
// rotation and -vmodule/-vpath flag support. That backend carried more
// machinery than a small synchronization engine needs, so this package
// instead rolls its own minimal leveled logger atop the standard
// library's log.Logger.
package vlog

import (
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
)

// Logger is a leveled logger.  The zero value logs at level 0 to stderr.
type Logger struct {
	mu    sync.Mutex
	out   *log.Logger
	level int32 // atomic; gate for V().
}

// Log is the process-wide default Logger, matching the original vlog's
// single global instance.
var Log = &Logger{out: log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)}

// SetLevel sets the verbosity threshold used by V().
func (l *Logger) SetLevel(level Level) {
	atomic.StoreInt32(&l.level, int32(level))
}

// V returns true if the configured logging level is >= level.
func (l *Logger) V(level Level) bool {
	return atomic.LoadInt32(&l.level) >= int32(level)
}

// Info logs to the INFO log.  Arguments are handled in the manner of
// fmt.Print.
func (l *Logger) Info(args ...interface{}) {
	l.printf("I", fmt.Sprint(args...))
}

// Infof logs to the INFO log.  Arguments are handled in the manner of
// fmt.Printf.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.printf("I", fmt.Sprintf(format, args...))
}

// Error logs to the ERROR log.  Arguments are handled in the manner of
// fmt.Print.
func (l *Logger) Error(args ...interface{}) {
	l.printf("E", fmt.Sprint(args...))
}

// Errorf logs to the ERROR log.  Arguments are handled in the manner of
// fmt.Printf.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf("E", fmt.Sprintf(format, args...))
}

// Fatal logs to the FATAL log and then panics, so that the caller's
// stack (the invariant-violating call site) is visible. Used for
// unrecoverable internal invariant violations, where there is no
// sensible way to continue execution.
func (l *Logger) Fatal(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.printf("F", msg)
	panic(msg)
}

// Fatalf is like Fatal, but with fmt.Printf-style formatting.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.printf("F", msg)
	panic(msg)
}

func (l *Logger) printf(severity, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out == nil {
		l.out = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
	}
	l.out.Printf("%s %s", severity, msg)
}

// Package-level convenience functions delegating to Log, matching the
// original vlog's call shape (vlog.Info(...), vlog.V(2) { vlog.Infof(...) }).

func Info(args ...interface{})                 { Log.Info(args...) }
func Infof(format string, args ...interface{}) { Log.Infof(format, args...) }
func Error(args ...interface{})                 { Log.Error(args...) }
func Errorf(format string, args ...interface{}) { Log.Errorf(format, args...) }
func Fatal(args ...interface{})                 { Log.Fatal(args...) }
func Fatalf(format string, args ...interface{}) { Log.Fatalf(format, args...) }
func V(level Level) bool                        { return Log.V(level) }
func SetLevel(level Level)                      { Log.SetLevel(level) }
