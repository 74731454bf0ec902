// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synch

import (
	"sync/atomic"
	"time"

	"github.com/vanadium-labs/synchcore/metrics"
	"github.com/vanadium-labs/synchcore/uniqueid"
	"github.com/vanadium-labs/synchcore/vlog"
)

// Kind identifies which of the four acquisition disciplines an Object
// implements. The four kinds share the same waitq/lock/ready_count
// machinery in this file; only try_acquire's side effect differs.
type Kind int

const (
	Event Kind = iota
	Semaphore
	Mutex
	Callout
)

func (k Kind) String() string {
	switch k {
	case Event:
		return "event"
	case Semaphore:
		return "semaphore"
	case Mutex:
		return "mutex"
	case Callout:
		return "callout"
	default:
		return "kind(?)"
	}
}

// Object is the polymorphic synchronization object: event, semaphore,
// mutex, or callout. All four share a ready count, a FIFO waitq, and a
// spinlock; only the try_acquire side effect varies by kind.
type Object struct {
	id uniqueid.ID

	mu uint32 // spinlock guarding everything below.

	kind       Kind
	readyCount uint64
	waitq      dll // sentinel; linked Blocks are the queued waiters.

	// Mutex-only.
	owner *Thread

	// Callout-only.
	deadline time.Time
	armed    bool
	cancel   func() // disarms the pending timer, if any.
}

func newObject(kind Kind) *Object {
	id, _ := uniqueid.Random()
	o := &Object{kind: kind, id: id}
	o.waitq.makeEmpty()
	return o
}

// NewEvent returns a new, unset event.
func NewEvent() *Object { return newObject(Event) }

// NewSemaphore returns a new semaphore with the given initial count.
func NewSemaphore(count uint64) *Object {
	o := newObject(Semaphore)
	o.readyCount = count
	return o
}

// NewMutex returns a new, unlocked mutex.
func NewMutex() *Object {
	o := newObject(Mutex)
	o.readyCount = 1
	return o
}

// NewCallout returns a new, unarmed callout.
func NewCallout() *Object { return newObject(Callout) }

func (o *Object) lock()   { spinLock(&o.mu) }
func (o *Object) unlock() { spinUnlock(&o.mu) }

// tryAcquireLocked applies the kind-specific acquisition side effect for t.
// Requires o.mu held and o.readyCount > 0.
func (o *Object) tryAcquireLocked(t *Thread) {
	switch o.kind {
	case Event, Callout:
		// Sticky: ready_count stays at 1, any number of waiters may be
		// satisfied by one signal/fire.
	case Semaphore:
		o.readyCount--
	case Mutex:
		o.readyCount = 0
		o.owner = t
	}
}

// queueLen returns the number of wait blocks currently queued. Requires
// o.mu held.
func (o *Object) queueLen() int {
	n := 0
	for p := o.waitq.next; p != &o.waitq; p = p.next {
		n++
	}
	return n
}

// drain serves waiters until ready_count is exhausted or the queue
// empties, per the signaler algorithm in the engine's design. Requires
// o.mu NOT held; drain acquires and releases it itself so that unparking
// can happen after the object lock is dropped.
func (o *Object) drain() {
	o.lock()
	var wake []*Thread
	for o.readyCount > 0 && !o.waitq.isEmpty() {
		wb := o.waitq.head()
		t := wb.thread
		switch {
		case atomic.CompareAndSwapInt32(&t.synchStatus, preWait, postWait):
			wb.status = acquired
			o.tryAcquireLocked(t)
			wb.q.remove()
			t.satisfier = o
		case atomic.CompareAndSwapInt32(&t.synchStatus, wait, postWait):
			wb.status = acquired
			o.tryAcquireLocked(t)
			wb.q.remove()
			t.satisfier = o
			wake = append(wake, t)
		default:
			// t already POST_WAIT via another object; reap this block.
			wb.status = inactive
			wb.q.remove()
		}
	}
	depth := o.queueLen()
	o.unlock()
	metrics.SetQueueDepth(o.kind.String(), depth)

	for _, t := range wake {
		t.unpark()
	}
}

// Signal sets the event's ready_count to 1 and drains waiters. Idempotent
// while ready_count is already 1.
func (o *Object) Signal() {
	o.lock()
	o.readyCount = 1
	o.unlock()
	if vlog.V(2) {
		vlog.Infof("synch: %s signaled", o.kind)
	}
	o.drain()
}

// Reset clears ready_count to 0. Waiters already dequeued are unaffected;
// future waits will block. Valid for events and callouts.
func (o *Object) Reset() {
	o.lock()
	o.readyCount = 0
	if o.kind == Callout {
		o.disarmLocked()
	}
	o.unlock()
}

// Post adds n to the semaphore's ready_count and drains waiters. Returns
// ErrOverflow, leaving ready_count unchanged, if the addition would
// saturate past the representable range.
func (o *Object) Post(n uint64) error {
	o.lock()
	if n > maxReadyCount || o.readyCount > maxReadyCount-n {
		o.unlock()
		metrics.IncOverflow()
		return ErrOverflow
	}
	o.readyCount += n
	o.unlock()
	o.drain()
	return nil
}

// Release relinquishes a mutex held by t, sets ready_count to 1, and
// drains waiters. Panics if t does not currently own the mutex: like
// nsync.Mu.Unlock panicking on a double-unlock, this is a programming
// bug with no recovery path, not a caller-handled error.
func (o *Object) Release(t *Thread) {
	o.lock()
	if o.owner != t {
		o.unlock()
		panic(ErrNotOwner)
	}
	o.owner = nil
	o.readyCount = 1
	o.unlock()
	o.drain()
}
