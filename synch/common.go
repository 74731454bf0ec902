// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package synch implements the wait/signal engine of a kernel
// synchronization-object framework: the data model tying threads to
// objects via wait blocks, the three-phase wait protocol, the signaling
// protocol, and the atomic thread-state machine that eliminates lost and
// spurious wakeups.
//
// The four object kinds sharing this engine are events, semaphores,
// mutexes, and callouts (timers).  Each shares the same queue, spinlock,
// and ready-count machinery; only the acquisition side effect differs
// (see object.go).
package synch

import (
	"math"
	"runtime"
	"sync/atomic"
	"time"
)

// Forever is the deadline sentinel meaning "wait with no timeout".  A wait
// with deadline==Forever omits the hidden timeout wait block entirely.
var Forever time.Time

// Never is the deadline sentinel meaning "don't block at all": phase P
// (preparation) runs and phase C (commit) is skipped, so the call degrades
// to a poll.
var Never time.Time

func init() {
	// Forever is set far enough in the future that it is never reached in
	// practice, following the same idiom nsync.NoDeadline uses.
	Forever = time.Now().Add(time.Duration(math.MaxInt64)).Add(time.Duration(math.MaxInt64))
	// Never is the zero Time, unambiguously in the past and distinct from
	// any deadline a caller would construct with time.Now().Add(d).
	Never = time.Time{}
}

// spinDelay is used in spinloops to delay resumption of the loop.
// Usage:
//
//	var attempts uint
//	for try_something {
//	   attempts = spinDelay(attempts)
//	}
func spinDelay(attempts uint) uint {
	if attempts < 7 {
		for i := 0; i != 1<<attempts; i++ {
		}
		attempts++
	} else {
		runtime.Gosched()
	}
	return attempts
}

// spinLock spins until *w is zero, then atomically sets it to 1 and
// returns.  It performs an acquire barrier.  Used to guard an Object's
// ready_count/waitq and a Thread's commit-vs-wake race.
func spinLock(w *uint32) {
	var attempts uint
	for !atomic.CompareAndSwapUint32(w, 0, 1) { // acquire CAS
		attempts = spinDelay(attempts)
	}
}

// spinUnlock releases a spinlock acquired with spinLock.
func spinUnlock(w *uint32) {
	atomic.StoreUint32(w, 0) // release store
}
