// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calloutsub_test

import (
	"testing"
	"time"

	_ "github.com/vanadium-labs/synchcore/calloutsub"
	"github.com/vanadium-labs/synchcore/synch"
)

func TestArmedCalloutFiresAtDeadline(t *testing.T) {
	c := synch.NewCallout()
	start := time.Now()
	c.Set(start.Add(20 * time.Millisecond))

	th := synch.NewThread(nil)
	r := synch.Wait1(th, c, "fire", false, synch.Forever)
	if r.Outcome != synch.Acquired {
		t.Fatalf("got %s, want Acquired", r.Outcome)
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("callout fired after %v, too soon for a 20ms deadline", elapsed)
	}
}

func TestCalloutCancelledByReset(t *testing.T) {
	c := synch.NewCallout()
	c.Set(time.Now().Add(50 * time.Millisecond))
	c.Reset() // disarms the pending timer before it fires.

	th := synch.NewThread(nil)
	r := synch.Wait1(th, c, "poll", false, synch.Never)
	if r.Outcome != synch.WouldBlock {
		t.Fatalf("got %s, want WouldBlock", r.Outcome)
	}
}

func TestRearmingCalloutDisarmsPrevious(t *testing.T) {
	c := synch.NewCallout()
	c.Set(time.Now().Add(200 * time.Millisecond)) // would fire late.
	c.Set(time.Now().Add(10 * time.Millisecond))  // supersedes it.

	th := synch.NewThread(nil)
	start := time.Now()
	r := synch.Wait1(th, c, "rearm", false, synch.Forever)
	if r.Outcome != synch.Acquired {
		t.Fatalf("got %s, want Acquired", r.Outcome)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("callout took %v, the superseded 200ms timer must not have fired first", elapsed)
	}
}
