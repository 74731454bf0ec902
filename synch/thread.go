// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synch

import (
	"github.com/vanadium-labs/synchcore/scheduler"
	"github.com/vanadium-labs/synchcore/uniqueid"
)

// synchStatus values. Only three transitions are ever legal:
// preWait->postWait (early satisfaction or a signaler claiming a
// preparing thread), preWait->wait (commit), and wait->postWait (a
// signaler claiming a sleeping thread). idle is the quiescent value
// between wait calls.
const (
	idle int32 = iota
	preWait
	wait
	postWait
)

// inlineBlocks is the size of a Thread's inline wait-block pool; waits on
// more objects than this spill to a heap-allocated slice.
const inlineBlocks = 4

// Thread is the per-thread wait state: the atomic synch_status word, the
// thread spinlock serializing commit against wake, and the small inline
// pool of wait blocks a wait call draws from.
type Thread struct {
	id uniqueid.ID

	synchStatus int32 // atomic; see the constants above.
	lock        uint32

	wbInline [inlineBlocks]Block
	wbExtra  []Block

	satisfier *Object

	parker scheduler.Parker

	// killEvent is the per-thread event an interruptible wait implicitly
	// adds to its wait set; Terminate signals it to cancel any such wait
	// in progress.
	killEvent *Object
}

// NewThread returns a new Thread parked by sched.
func NewThread(sched scheduler.Scheduler) *Thread {
	if sched == nil {
		sched = scheduler.Default
	}
	id, _ := uniqueid.Random()
	return &Thread{
		id:        id,
		parker:    sched.NewParker(),
		killEvent: NewEvent(),
	}
}

// Terminate cancels any interruptible wait currently in progress on t, by
// signaling its kill event. Idempotent.
func (t *Thread) Terminate() {
	t.killEvent.Signal()
}

// blocks returns a slice of n wait blocks drawn from t's inline pool,
// spilling to wbExtra when n > inlineBlocks.  The blocks are not reset
// here; prepare resets each one before linking it.
func (t *Thread) blocks(n int) []*Block {
	out := make([]*Block, n)
	for i := 0; i < n; i++ {
		if i < inlineBlocks {
			out[i] = &t.wbInline[i]
			continue
		}
	}
	if n > inlineBlocks {
		t.wbExtra = make([]Block, n-inlineBlocks)
		for i := inlineBlocks; i < n; i++ {
			out[i] = &t.wbExtra[i-inlineBlocks]
		}
	}
	return out
}

// unpark wakes t after a signaler has CAS'd it from WAIT to POST_WAIT
// under the satisfying object's lock. Acquires t.lock, per the lock-order
// rule (object lock, then thread lock, never reversed), to serialize
// against a concurrent commit that hasn't yet observed the CAS.
func (t *Thread) unpark() {
	spinLock(&t.lock)
	spinUnlock(&t.lock)
	t.parker.Unpark()
}
