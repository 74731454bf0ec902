// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synch

import (
	"sync/atomic"
	"time"

	"github.com/vanadium-labs/synchcore/metrics"
	"github.com/vanadium-labs/synchcore/vlog"
)

// Wait1 waits on a single object. It is the n=1 degenerate form of WaitN.
func Wait1(t *Thread, o *Object, reason string, interruptible bool, deadline time.Time) Result {
	r := WaitN(t, []*Object{o}, reason, interruptible, deadline)
	return r
}

// WaitN waits for any one of objects to become ready, following the
// three-phase protocol: Prepare (phase P) links a wait block per object
// or resolves immediately on early satisfaction, Commit (phase C) parks
// the thread if no early satisfaction occurred, and Finish (phase F)
// unwinds every wait block the thread owned.
//
// deadline == Forever waits with no timeout. deadline == Never performs a
// non-blocking poll: phase P runs and phase C is skipped, so a ready
// object is acquired immediately or WouldBlock is returned.
//
// reason is an opaque debug string attached to the wait, surfaced only
// through logging.
func WaitN(t *Thread, objects []*Object, reason string, interruptible bool, deadline time.Time) Result {
	waitSet := make([]*Object, len(objects))
	copy(waitSet, objects)
	if interruptible {
		waitSet = append(waitSet, t.killEvent)
	}

	var hiddenCallout *Object
	needsTimeout := !deadline.Equal(Forever) && !deadline.Equal(Never)
	if needsTimeout {
		hiddenCallout = NewCallout()
		hiddenCallout.Set(deadline)
		waitSet = append(waitSet, hiddenCallout)
	}

	t.satisfier = nil
	atomic.StoreInt32(&t.synchStatus, preWait)

	blocks := t.blocks(len(waitSet))
	linked := prepare(t, waitSet, blocks)

	if !deadline.Equal(Never) {
		commit(t)
	}

	finish(t, waitSet, blocks, linked)

	if hiddenCallout != nil {
		hiddenCallout.Reset()
	}

	return resultFor(t, objects, waitSet, reason)
}

// prepare runs phase P: for each object in order, attempt early
// satisfaction under its lock, else link a wait block into its waitq.
// Returns the indices (into waitSet/blocks) of objects whose wait block
// was actually linked, so that finish knows which to unwind.
func prepare(t *Thread, waitSet []*Object, blocks []*Block) []int {
	var linked []int
	for i, o := range waitSet {
		if atomic.LoadInt32(&t.synchStatus) != preWait {
			// Already claimed asynchronously by a signaler on an
			// earlier object's wait block; stop enqueueing further.
			break
		}
		o.lock()
		if o.readyCount > 0 {
			if atomic.CompareAndSwapInt32(&t.synchStatus, preWait, postWait) {
				t.satisfier = o
				o.tryAcquireLocked(t)
				o.unlock()
				break
			}
			o.unlock()
			break
		}
		blocks[i].reset(t, o)
		if blocks[i].q.isInList(&o.waitq) {
			o.unlock()
			vlog.Fatal("synch: wait block already linked into waitq")
		}
		blocks[i].q.insertAfter(&o.waitq)
		o.unlock()
		linked = append(linked, i)
	}
	return linked
}

// commit runs phase C: if phase P left the thread at PRE_WAIT (no early
// satisfaction), attempt to commit to sleeping and park; otherwise the
// thread is already POST_WAIT and commit is a no-op.
func commit(t *Thread) {
	spinLock(&t.lock)
	committed := atomic.CompareAndSwapInt32(&t.synchStatus, preWait, wait)
	spinUnlock(&t.lock)
	if committed {
		t.parker.ParkSelf()
	}
}

// finish runs phase F: under each linked object's lock, resolve the
// thread's wait block for it per status, then reset the thread to idle.
func finish(t *Thread, waitSet []*Object, blocks []*Block, linked []int) {
	for _, i := range linked {
		o := waitSet[i]
		wb := blocks[i]
		o.lock()
		switch wb.status {
		case active:
			wb.q.remove()
		case acquired:
			// Already recorded as t.satisfier by the signaler; nothing
			// further to do here.
		case inactive:
			// Already unlinked by a signaler that lost the race.
		default:
			o.unlock()
			vlog.Fatal("synch: wait block has unrecognized status")
		}
		o.unlock()
	}
	atomic.StoreInt32(&t.synchStatus, idle)
}

func resultFor(t *Thread, objects []*Object, waitSet []*Object, reason string) Result {
	if vlog.V(3) {
		vlog.Infof("synch: wait %q resolved, satisfier=%p", reason, t.satisfier)
	}
	if t.satisfier == nil {
		metrics.ObserveWait("", "WouldBlock")
		return Result{Outcome: WouldBlock}
	}
	for _, k := range killIndex(waitSet, objects) {
		if t.satisfier == waitSet[k] {
			metrics.ObserveWait("event", "Interrupted")
			return Result{Outcome: Interrupted}
		}
	}
	for i, o := range objects {
		if o == t.satisfier {
			metrics.ObserveWait(o.kind.String(), "Acquired")
			return Result{Outcome: Acquired, Index: i, Object: o}
		}
	}
	// Not one of the caller's objects: must be the hidden timeout callout.
	metrics.ObserveWait("callout", "TimedOut")
	return Result{Outcome: TimedOut}
}

// killIndex returns the indices within waitSet that correspond to an
// implicitly-added kill event (i.e. objects appended beyond the
// caller-supplied objects, excluding a trailing hidden timeout callout).
func killIndex(waitSet []*Object, objects []*Object) []int {
	var idxs []int
	for i := len(objects); i < len(waitSet); i++ {
		if waitSet[i].kind == Event {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
