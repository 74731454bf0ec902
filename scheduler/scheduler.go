// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scheduler provides the two collaborator interfaces the
// synchronization engine (package synch) needs from a thread scheduler:
// parking/unparking a committed-sleeping thread, and a monotonic time
// source.  The engine never assumes a particular scheduling
// implementation; scheduler.Default supplies a goroutine-backed one
// suitable for a process that models kernel threads as goroutines.
package scheduler

import "time"

// A Parker is the sleep/wake rendezvous for a single thread.  It is
// logically a binary semaphore: ParkSelf blocks until a matching Unpark
// has been (or is concurrently) called.  A Parker is reusable across
// many park/unpark cycles.
type Parker interface {
	// ParkSelf blocks the calling goroutine until Unpark is called.  It
	// must be called only by the thread that owns this Parker.
	ParkSelf()
	// Unpark wakes the thread parked on this Parker, or arranges for the
	// next ParkSelf to return immediately if none is currently parked.
	Unpark()
}

// A Scheduler creates Parkers and reports the current time.
type Scheduler interface {
	// NewParker returns a Parker for a newly created thread.
	NewParker() Parker
	// Now returns the current time, per the same source used to arm
	// callouts (see package calloutsub).
	Now() time.Time
}

// Default is the Scheduler used by package synch unless overridden.  It
// models kernel threads as goroutines parked on a channel-based binary
// semaphore, mirroring the approach nsync uses for its own waiter sleep
// primitive.
var Default Scheduler = goroutineScheduler{}

type goroutineScheduler struct{}

func (goroutineScheduler) NewParker() Parker {
	return &chanParker{ch: make(chan struct{}, 1)}
}

func (goroutineScheduler) Now() time.Time {
	return time.Now()
}

// chanParker implements Parker with a 1-buffered channel, exactly the
// binary-semaphore idiom nsync's waiter.sem uses: a park is a receive, an
// unpark is a non-blocking send that is a no-op if the count is already 1.
type chanParker struct {
	ch chan struct{}
}

func (p *chanParker) ParkSelf() {
	<-p.ch
}

func (p *chanParker) Unpark() {
	select {
	case p.ch <- struct{}{}:
	default: // already has a pending wakeup; don't block.
	}
}
