// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synch

import "time"

// Armer is the collaborator interface the callout/timer subsystem
// implements: arm a callout to fire at a deadline, behaving like an
// external signaler that calls Signal on it at fire time. The concrete
// implementation (package calloutsub) registers itself with
// RegisterCalloutArmer in an init function, following the
// database/sql driver-registration idiom: this package must not import
// calloutsub directly, since calloutsub in turn depends on *Object to
// call Signal.
type Armer interface {
	// Arm schedules o to be Signal'd at deadline, and returns a cancel
	// function that disarms the timer if it hasn't fired yet. Cancel is
	// always safe to call, including after the timer has already fired.
	Arm(o *Object, deadline time.Time) (cancel func())
}

var calloutArmer Armer

// RegisterCalloutArmer installs the Armer used by (*Object).Set. Called
// from calloutsub's init function; panics if called more than once, in
// the style of database/sql.Register guarding against duplicate drivers.
func RegisterCalloutArmer(a Armer) {
	if calloutArmer != nil {
		panic("synch: RegisterCalloutArmer called twice")
	}
	calloutArmer = a
}

// Set arms the callout to fire at deadline: when the deadline elapses,
// the registered Armer calls Signal on o exactly as an external signaler
// would. Requires RegisterCalloutArmer to have been called (typically via
// a blank import of package calloutsub).
func (o *Object) Set(deadline time.Time) {
	if calloutArmer == nil {
		panic("synch: no callout Armer registered; blank-import package calloutsub")
	}
	o.lock()
	o.disarmLocked()
	o.deadline = deadline
	o.armed = true
	o.cancel = calloutArmer.Arm(o, deadline)
	o.unlock()
}

// disarmLocked cancels any pending timer for a callout object. Requires
// o.mu held.
func (o *Object) disarmLocked() {
	o.armed = false
	if o.cancel != nil {
		cancel := o.cancel
		o.cancel = nil
		// Running the cancel while holding o.mu is safe: it only touches
		// the external timer, never o itself.
		cancel()
	}
}
