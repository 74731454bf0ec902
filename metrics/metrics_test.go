// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveWaitIncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(waitsTotal.WithLabelValues("mutex", "Acquired"))
	ObserveWait("mutex", "Acquired")
	after := testutil.ToFloat64(waitsTotal.WithLabelValues("mutex", "Acquired"))
	if after != before+1 {
		t.Fatalf("waits_total{mutex,Acquired} = %v, want %v", after, before+1)
	}
}

func TestSetQueueDepthSetsGauge(t *testing.T) {
	SetQueueDepth("semaphore", 3)
	if got, want := testutil.ToFloat64(queueDepth.WithLabelValues("semaphore")), float64(3); got != want {
		t.Fatalf("waitq_depth{semaphore} = %v, want %v", got, want)
	}
	SetQueueDepth("semaphore", 0)
	if got, want := testutil.ToFloat64(queueDepth.WithLabelValues("semaphore")), float64(0); got != want {
		t.Fatalf("waitq_depth{semaphore} = %v, want %v", got, want)
	}
}

func TestIncOverflowIncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(overflowsTotal.WithLabelValues())
	IncOverflow()
	after := testutil.ToFloat64(overflowsTotal.WithLabelValues())
	if after != before+1 {
		t.Fatalf("semaphore_overflows_total = %v, want %v", after, before+1)
	}
}
