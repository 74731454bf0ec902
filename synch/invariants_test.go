// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synch

import "testing"

// TestDLLIsInList checks that isInList tracks membership across insert
// and remove.
func TestDLLIsInList(t *testing.T) {
	var head dll
	head.makeEmpty()
	var a, b dll
	a.insertAfter(&head)
	b.insertAfter(&head)

	if !a.isInList(&head) {
		t.Fatal("a: want isInList true after insert")
	}
	if !b.isInList(&head) {
		t.Fatal("b: want isInList true after insert")
	}

	a.remove()
	if a.isInList(&head) {
		t.Fatal("a: want isInList false after remove")
	}
	if !b.isInList(&head) {
		t.Fatal("b: want isInList true, unaffected by a's removal")
	}
}

// TestPrepareDetectsDoubleLink checks that linking an already-linked wait
// block trips the fatal invariant check in prepare rather than silently
// corrupting the waitq.
func TestPrepareDetectsDoubleLink(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("prepare: want panic from vlog.Fatal on double-linked block")
		}
	}()

	o := newObject(Event)
	th := NewThread(nil)
	th.synchStatus = preWait // as WaitN sets it before calling prepare.
	blocks := th.blocks(1)
	blocks[0].reset(th, o)
	blocks[0].q.insertAfter(&o.waitq)

	// blocks[0].q is still linked into o.waitq; running prepare against it
	// again must not insertAfter a second time.
	prepare(th, []*Object{o}, blocks)
}

// TestFinishDetectsUnknownStatus checks that finish treats an out-of-range
// Status as a fatal invariant violation rather than silently ignoring it.
func TestFinishDetectsUnknownStatus(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("finish: want panic from vlog.Fatal on unrecognized status")
		}
	}()

	o := newObject(Event)
	th := NewThread(nil)
	blocks := th.blocks(1)
	blocks[0].reset(th, o)
	blocks[0].q.insertAfter(&o.waitq)
	blocks[0].status = Status(99)

	finish(th, []*Object{o}, blocks, []int{0})
}
