// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textutil

import (
	"bytes"
	"testing"
)

func TestLineWriterWraps(t *testing.T) {
	var buf bytes.Buffer
	lw := NewUTF8LineWriter(&buf, 10)
	if _, err := lw.Write([]byte("one two three four\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	want := "one two\nthree four\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLineWriterIndents(t *testing.T) {
	var buf bytes.Buffer
	lw := NewUTF8LineWriter(&buf, 12)
	lw.SetIndents("> ", "  ")
	if _, err := lw.Write([]byte("one two three four\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	want := "> one two\n  three four\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLineWriterFlushWithoutTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	lw := NewUTF8LineWriter(&buf, 80)
	if _, err := lw.Write([]byte("no newline here")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("Write flushed before Flush: %q", buf.String())
	}
	if err := lw.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if got, want := buf.String(), "no newline here\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLineWriterNegativeWidthDisablesWrapping(t *testing.T) {
	var buf bytes.Buffer
	lw := NewUTF8LineWriter(&buf, -1)
	long := "a very long line that would wrap at any positive width but must not here\n"
	if _, err := lw.Write([]byte(long)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := buf.String(); got != long {
		t.Errorf("got %q, want %q", got, long)
	}
}

func TestLineWriterWidth(t *testing.T) {
	lw := NewUTF8LineWriter(nil, 42)
	if got, want := lw.Width(), 42; got != want {
		t.Errorf("Width() = %d, want %d", got, want)
	}
}
