// Copyright 2016 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Binary synchdemo drives the wait/signal engine through a handful of
// canonical scenarios (single event broadcast, a semaphore of 3, mutex
// handoff, a multi-wait race, a wait that times out with no signal, and a
// poll) and
// prints a timing breakdown of each.
package main

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/vanadium-labs/synchcore/buildinfo"
	_ "github.com/vanadium-labs/synchcore/calloutsub"
	"github.com/vanadium-labs/synchcore/cmdline2"
	"github.com/vanadium-labs/synchcore/envvar"
	"github.com/vanadium-labs/synchcore/metrics"
	"github.com/vanadium-labs/synchcore/synch"
	"github.com/vanadium-labs/synchcore/timing"
	"github.com/vanadium-labs/synchcore/vlog"
)

var scenarios = map[string]func(*timing.FullTimer){
	"event":     scenarioEventBroadcast,
	"semaphore": scenarioSemaphoreOfThree,
	"mutex":     scenarioMutexHandoff,
	"multiwait": scenarioMultiWaitRace,
	"timeout":   scenarioTimeoutBeatsSignal,
	"poll":      scenarioPoll,
}

func main() {
	root := &cmdline2.Command{
		Name:  "synchdemo",
		Short: "Exercises the synchronization engine's canonical scenarios",
		Long: `
Command synchdemo runs one or more of the synchronization engine's
canonical test scenarios and prints a phase-timing breakdown for each.
`,
		Children: []*cmdline2.Command{
			runCommand(),
			serveCommand(),
			versionCommand(),
		},
	}
	cmdline2.Main(root)
}

func versionCommand() *cmdline2.Command {
	return &cmdline2.Command{
		Name:  "version",
		Short: "Print build information",
		Runner: cmdline2.RunnerFunc(func(env *cmdline2.Env, args []string) error {
			fmt.Fprintln(env.Stdout, buildinfo.Info().String())
			return nil
		}),
	}
}

func serveCommand() *cmdline2.Command {
	var addr string
	cmd := &cmdline2.Command{
		Name:  "serve",
		Short: "Serve Prometheus metrics for the engine",
		Long: `
Command serve starts an HTTP server exposing the engine's Prometheus
metrics (synchcore_waits_total, synchcore_waitq_depth,
synchcore_semaphore_overflows_total) at /metrics.  It does not run any
scenarios itself, and only waits made inside this process are counted.
`,
		Runner: cmdline2.RunnerFunc(func(env *cmdline2.Env, args []string) error {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			fmt.Fprintf(env.Stdout, "serving metrics on %s/metrics\n", addr)
			return http.ListenAndServe(addr, mux)
		}),
	}
	cmd.Flags.StringVar(&addr, "addr", ":9090", "address to listen on")
	return cmd
}

func runCommand() *cmdline2.Command {
	cmd := &cmdline2.Command{
		Name:     "run",
		Short:    "Run one or all scenarios",
		ArgsName: "[scenario ...]",
		ArgsLong: `
[scenario ...] names the scenarios to run: event, semaphore, mutex,
multiwait, timeout, poll. With no arguments, every scenario runs.
`,
		Runner: cmdline2.RunnerFunc(runScenarios),
	}
	return cmd
}

func runScenarios(env *cmdline2.Env, args []string) error {
	vlog.SetLevel(vlog.Level(envvar.Int(envvar.LogLevelVar, 0)))
	names := args
	if len(names) == 0 {
		names = []string{"event", "semaphore", "mutex", "multiwait", "timeout", "poll"}
	}
	for _, name := range names {
		scenario, ok := scenarios[name]
		if !ok {
			return env.UsageErrorf("run: unknown scenario %q", name)
		}
		fmt.Fprintf(env.Stdout, "=== %s ===\n", name)
		timer := timing.NewFullTimer(name)
		scenario(timer)
		timer.Finish()
		printer := timing.IntervalPrinter{}
		if err := printer.Print(env.Stdout, timer.Root()); err != nil {
			return err
		}
		fmt.Fprintln(env.Stdout)
	}
	return nil
}

func scenarioEventBroadcast(timer *timing.FullTimer) {
	timer.Push("wait")
	e := synch.NewEvent()
	var wg sync.WaitGroup
	results := make([]synch.Result, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			t := synch.NewThread(nil)
			results[i] = synch.Wait1(t, e, "broadcast", false, synch.Forever)
		}(i)
	}
	time.Sleep(5 * time.Millisecond) // let all three threads enqueue.
	timer.Pop()
	timer.Push("signal")
	e.Signal()
	wg.Wait()
	timer.Pop()
	for i, r := range results {
		vlog.Infof("event broadcast: waiter %d -> %s", i, r.Outcome)
	}
}

func scenarioSemaphoreOfThree(timer *timing.FullTimer) {
	timer.Push("wait")
	s := synch.NewSemaphore(3)
	var wg sync.WaitGroup
	results := make([]synch.Result, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			t := synch.NewThread(nil)
			results[i] = synch.Wait1(t, s, "sem3", false, synch.Forever)
		}(i)
	}
	time.Sleep(5 * time.Millisecond)
	timer.Pop()
	timer.Push("post")
	s.Post(1)
	wg.Wait()
	timer.Pop()
	for i, r := range results {
		vlog.Infof("semaphore of 3: waiter %d -> %s", i, r.Outcome)
	}
}

func scenarioMutexHandoff(timer *timing.FullTimer) {
	m := synch.NewMutex()
	a := synch.NewThread(nil)
	b := synch.NewThread(nil)
	c := synch.NewThread(nil)

	timer.Push("a-acquires")
	synch.Wait1(a, m, "mutex-a", false, synch.Forever)
	timer.Pop()

	var wg sync.WaitGroup
	wg.Add(2)
	timer.Push("b-and-c-wait")
	go func() {
		defer wg.Done()
		synch.Wait1(b, m, "mutex-b", false, synch.Forever)
		m.Release(b)
	}()
	time.Sleep(2 * time.Millisecond) // ensure B enqueues before C.
	go func() {
		defer wg.Done()
		synch.Wait1(c, m, "mutex-c", false, synch.Forever)
	}()
	time.Sleep(5 * time.Millisecond)
	timer.Pop()

	timer.Push("a-releases")
	m.Release(a)
	wg.Wait()
	timer.Pop()
}

func scenarioMultiWaitRace(timer *timing.FullTimer) {
	m := synch.NewMutex()
	e := synch.NewEvent()
	owner := synch.NewThread(nil)
	synch.Wait1(owner, m, "lock-m", false, synch.Forever) // pre-lock M.

	timer.Push("t-waits")
	t := synch.NewThread(nil)
	var result synch.Result
	done := make(chan struct{})
	go func() {
		result = synch.WaitN(t, []*synch.Object{m, e}, "race", false, synch.Forever)
		close(done)
	}()
	time.Sleep(5 * time.Millisecond)
	timer.Pop()

	timer.Push("signalers-race")
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); m.Release(owner) }()
	go func() { defer wg.Done(); e.Signal() }()
	wg.Wait()
	<-done
	timer.Pop()

	vlog.Infof("multi-wait race: %s index=%d", result.Outcome, result.Index)
}

func scenarioTimeoutBeatsSignal(timer *timing.FullTimer) {
	timer.Push("wait-with-deadline")
	e := synch.NewEvent()
	t := synch.NewThread(nil)
	result := synch.Wait1(t, e, "timeout", false, time.Now().Add(10*time.Millisecond))
	timer.Pop()
	vlog.Infof("timeout beats signal: %s", result.Outcome)
}

func scenarioPoll(timer *timing.FullTimer) {
	timer.Push("poll")
	m := synch.NewMutex()
	e := synch.NewEvent()
	synch.Wait1(synch.NewThread(nil), m, "lock-m", false, synch.Forever) // lock M.
	e.Signal()                                                           // set E.
	t := synch.NewThread(nil)
	result := synch.WaitN(t, []*synch.Object{m, e}, "poll", false, synch.Never)
	timer.Pop()
	vlog.Infof("poll: %s index=%d", result.Outcome, result.Index)
}
