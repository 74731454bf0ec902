// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textutil

import (
	"io"
	"strings"
)

// LineWriter greedily word-wraps text written to it into lines of at most a
// target display width, and writes the wrapped output to an underlying
// io.Writer.  Input is buffered until a newline rune is seen or Flush is
// called.  Typically constructed via NewUTF8LineWriter.
type LineWriter struct {
	w       io.Writer
	dec     UTF8ChunkDecoder
	width   int
	first   string
	rest    string
	pending []rune
}

// NewUTF8LineWriter returns a LineWriter that word-wraps UTF-8 text written
// to it to at most width runes per line, and writes the result to w.  A
// negative width disables wrapping.
func NewUTF8LineWriter(w io.Writer, width int) *LineWriter {
	return &LineWriter{w: w, width: width}
}

// Width returns the configured wrap width.
func (lw *LineWriter) Width() int { return lw.width }

// SetIndents sets the indentation applied to wrapped output.  With no
// arguments, indentation is cleared.  With one argument, every line uses
// that indent.  With two arguments, the first line uses the first indent,
// and every continuation line uses the second.
func (lw *LineWriter) SetIndents(indents ...string) {
	switch len(indents) {
	case 0:
		lw.first, lw.rest = "", ""
	case 1:
		lw.first, lw.rest = indents[0], indents[0]
	default:
		lw.first, lw.rest = indents[0], indents[1]
	}
}

// Write implements io.Writer.
func (lw *LineWriter) Write(data []byte) (int, error) {
	var werr error
	n, err := RuneChunkWrite(&lw.dec, func(r rune) error {
		if r == '\n' {
			werr = lw.flushLine()
			return werr
		}
		lw.pending = append(lw.pending, r)
		return nil
	}, data)
	if err != nil {
		return n, err
	}
	return n, werr
}

// Flush word-wraps and writes any text buffered since the last newline.
func (lw *LineWriter) Flush() error {
	if err := RuneChunkFlush(&lw.dec, func(r rune) error {
		lw.pending = append(lw.pending, r)
		return nil
	}); err != nil {
		return err
	}
	if len(lw.pending) == 0 {
		return nil
	}
	return lw.flushLine()
}

func (lw *LineWriter) flushLine() error {
	line := string(lw.pending)
	lw.pending = lw.pending[:0]
	for _, wrapped := range wrapLine(line, lw.width, lw.first, lw.rest) {
		if _, err := io.WriteString(lw.w, wrapped+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// wrapLine greedily wraps s into lines of at most width runes, prefixing the
// first line with first and subsequent lines with rest.  A negative width
// disables wrapping; the words are still joined onto a single line.
func wrapLine(s string, width int, first, rest string) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{strings.TrimRight(first, " ")}
	}
	var lines []string
	indent := first
	cur := indent
	curLen := len([]rune(indent))
	for _, word := range words {
		wl := len([]rune(word))
		atIndent := cur == indent
		sep := 0
		if !atIndent {
			sep = 1
		}
		if width >= 0 && !atIndent && curLen+sep+wl > width {
			lines = append(lines, cur)
			indent = rest
			cur = indent
			curLen = len([]rune(indent))
			atIndent = true
			sep = 0
		}
		if sep == 1 {
			cur += " "
			curLen++
		}
		cur += word
		curLen += wl
	}
	lines = append(lines, cur)
	return lines
}
