// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synch

import "errors"

// Outcome classifies how a wait call completed.
type Outcome int

const (
	// Acquired means one of the waited-on objects satisfied the wait;
	// Result.Index and Result.Object identify it.
	Acquired Outcome = iota
	// TimedOut means the hidden deadline callout fired before any other
	// object in the wait set became ready.
	TimedOut
	// WouldBlock means the wait used the Never deadline (a poll) and no
	// object was ready.
	WouldBlock
	// Interrupted means an interruptible wait was cancelled by the
	// thread's kill event.
	Interrupted
)

func (o Outcome) String() string {
	switch o {
	case Acquired:
		return "Acquired"
	case TimedOut:
		return "TimedOut"
	case WouldBlock:
		return "WouldBlock"
	case Interrupted:
		return "Interrupted"
	default:
		return "Outcome(?)"
	}
}

// Result is returned by Wait1 and WaitN.
type Result struct {
	Outcome Outcome
	// Index is the position within the caller-supplied objects slice that
	// was satisfied. Only meaningful when Outcome == Acquired.
	Index int
	// Object is the satisfying object itself, equal to objects[Index].
	Object *Object
}

// ErrNotOwner is the panic value (*Object).Release uses when the calling
// thread does not currently own the mutex.
var ErrNotOwner = errors.New("synch: mutex release by non-owner")

// ErrOverflow is returned by (*Object).Post when adding n would saturate
// ready_count past its representable range.
var ErrOverflow = errors.New("synch: semaphore post overflow")

// maxReadyCount bounds a semaphore's ready_count so that Post can detect
// saturation rather than silently wrapping.
const maxReadyCount = 1<<63 - 1
