// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synch

// A dll is an element of a circular doubly-linked list, used as the FIFO
// waitq of an Object.  The list has no separate head node: the Object's
// own dll field acts as the sentinel, and Block.q is the embedded element
// for each queued waiter.
type dll struct {
	next *dll
	prev *dll
	elem *Block // the Block this dll is embedded in, or nil for a sentinel.
}

// makeEmpty makes list *l empty.  Requires that *l is not currently part
// of a non-empty list.
func (l *dll) makeEmpty() {
	l.next = l
	l.prev = l
}

// isEmpty returns whether list *l is empty.
func (l *dll) isEmpty() bool {
	return l.next == l
}

// insertAfter inserts element *e into the list after position *p.
// Requires that *e is not currently part of a list and that *p is part of
// a list.
func (e *dll) insertAfter(p *dll) {
	e.next = p.next
	e.prev = p
	e.next.prev = e
	e.prev.next = e
}

// remove removes *e from the list it is currently in.
func (e *dll) remove() {
	e.next.prev = e.prev
	e.prev.next = e.next
}

// isInList returns whether element e can still be found in list l.
func (e *dll) isInList(l *dll) bool {
	p := l.next
	for p != e && p != l {
		p = p.next
	}
	return p == e
}

// head returns the Block at the front of the FIFO queue rooted at l, or
// nil if l is empty.  New entries are linked in with insertAfter(l), which
// places them at l.next; the oldest entry therefore ends up at l.prev,
// exactly as in nsync's Mu/CV waiter queues.
func (l *dll) head() *Block {
	if l.isEmpty() {
		return nil
	}
	return l.prev.elem
}
