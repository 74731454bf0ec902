// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics exposes Prometheus instrumentation for the
// synchronization engine: counts of completed waits by outcome and kind,
// and a gauge of current waitq depth per object kind.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	waitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "synchcore",
		Name:      "waits_total",
		Help:      "Completed waits, partitioned by object kind and outcome.",
	}, []string{"kind", "outcome"})

	queueDepth = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "synchcore",
		Name:      "waitq_depth",
		Help:      "Current number of wait blocks queued on an object.",
	}, []string{"kind"})

	overflowsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "synchcore",
		Name:      "semaphore_overflows_total",
		Help:      "Semaphore Post calls rejected for saturating ready_count.",
	}, []string{})
)

func init() {
	prometheus.MustRegister(waitsTotal, queueDepth, overflowsTotal)
}

// ObserveWait records the outcome of a completed wait for the given object
// kind ("event", "semaphore", "mutex", "callout", or "" when no object
// satisfied the wait, i.e. a WouldBlock poll).
func ObserveWait(kind, outcome string) {
	waitsTotal.WithLabelValues(kind, outcome).Inc()
}

// SetQueueDepth records the current waitq length for an object of the
// given kind.
func SetQueueDepth(kind string, depth int) {
	queueDepth.WithLabelValues(kind).Set(float64(depth))
}

// IncOverflow records a rejected semaphore Post.
func IncOverflow() {
	overflowsTotal.WithLabelValues().Inc()
}

// Handler returns an http.Handler serving the engine's metrics in the
// Prometheus exposition format, suitable for mounting at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
