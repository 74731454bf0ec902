// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synch

// Status is the state of a Block, the rendezvous point between a waiter
// and a signaler.  It is written only under the owning Object's lock.
type Status int

const (
	// active means the block is linked into an Object's waitq and not
	// yet resolved.
	active Status = iota
	// acquired means a signaler removed the block and ran tryAcquire on
	// the waiting thread's behalf; the block's Object is the satisfier.
	acquired
	// inactive means the block was removed without acquisition, e.g.
	// another object satisfied a multi-wait, or the thread raced a
	// signaler and reached POST_WAIT first.
	inactive
)

// A Block is a per-(thread, object) record: the atom of the design.  It is
// allocated from its owning Thread's pool at wait entry, linked into at
// most one Object's waitq during preparation, and returned to the pool
// when the wait call returns.
type Block struct {
	q      dll     // queue linkage; q.elem always points back to this Block.
	thread *Thread // back-reference, non-owning.
	object *Object // back-reference, non-owning; the object this block waits on.
	status Status
}

func (b *Block) reset(thread *Thread, object *Object) {
	b.thread = thread
	b.object = object
	b.status = active
	b.q.elem = b
}
