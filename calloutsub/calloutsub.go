// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calloutsub is the callout/timer subsystem collaborator the
// synchronization engine (package synch) treats as external: it arms a
// callout object to fire at a deadline, and at fire time behaves like a
// signaler by calling Signal on it.
//
// synch never imports calloutsub directly — the dependency runs the
// other way, to avoid a cycle (calloutsub needs *synch.Object to call
// Signal). Instead, following the database/sql driver-registration
// idiom, calloutsub registers itself with synch.RegisterCalloutArmer
// from an init function. Programs that use deadlines must blank-import
// this package:
//
//	import _ "github.com/vanadium-labs/synchcore/calloutsub"
package calloutsub

import (
	"time"

	"github.com/vanadium-labs/synchcore/synch"
	"github.com/vanadium-labs/synchcore/vlog"
)

func init() {
	synch.RegisterCalloutArmer(timerArmer{})
}

// timerArmer implements synch.Armer atop the standard library's
// time.AfterFunc.
type timerArmer struct{}

func (timerArmer) Arm(o *synch.Object, deadline time.Time) (cancel func()) {
	d := time.Until(deadline)
	if d < 0 {
		d = 0
	}
	timer := time.AfterFunc(d, func() {
		if vlog.V(3) {
			vlog.Infof("calloutsub: callout fired at %s", deadline)
		}
		o.Signal()
	})
	return func() { timer.Stop() }
}
