// Copyright 2025 The Kubernetes Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package executor implements the level executor (C5): it applies a
// level-ordered schedule of reconciliation Actions against a transport,
// fanning out within each level up to a configured bound, journaling every
// mutation, and polling kind-specific readiness before declaring an object
// settled.
package executor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pynenc/piceli/pkg/journal"
	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/reconcile"
	"github.com/pynenc/piceli/pkg/transport"
)

// Config tunes the executor's concurrency and patience.
type Config struct {
	// Parallelism bounds concurrent Actions within a level; 0 means
	// unbounded (subject only to transport rate limits), per §4.5.
	Parallelism int
	// MaxAttempts caps retries of a single Action's submit step on
	// transient failures.
	MaxAttempts int
	// ReadinessTimeout bounds how long to poll for an object's readiness
	// predicate before treating it as a terminal failure.
	ReadinessTimeout time.Duration
	// PollInterval is the delay between readiness polls.
	PollInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 5
	}
	if c.PollInterval == 0 {
		c.PollInterval = 2 * time.Second
	}
	// ReadinessTimeout has no default: zero means "no readiness wait
	// enforced beyond apply-acknowledged" (Open Question #2). Guessing a
	// default here would silently turn a fast fake-transport deploy into
	// a multi-minute wall-clock wait against a real cluster.
	return c
}

// Executor applies a level-ordered plan to a transport.
type Executor struct {
	transport transport.Transport
	journal   *journal.Journal
	cfg       Config
}

// New builds an Executor. journal may be shared with a caller that intends
// to drive rollback after Run reports a failure.
func New(t transport.Transport, j *journal.Journal, cfg Config) *Executor {
	return &Executor{transport: t, journal: j, cfg: cfg.withDefaults()}
}

// Result is the outcome of one Run: every Action that failed, keyed by
// identity. An empty Failed means every level completed.
type Result struct {
	Failed map[object.Identity]error
}

// OK reports whether every Action completed without error.
func (r *Result) OK() bool { return len(r.Failed) == 0 }

// Run applies levels in order. Within a level, every Action runs
// concurrently up to cfg.Parallelism. A level completes only when every
// Action in it settles; if any Action fails, Run stops before starting the
// next level (§4.5 "Level completion").
func (e *Executor) Run(ctx context.Context, levels [][]object.Identity, actions map[object.Identity]*reconcile.Action) *Result {
	result := &Result{Failed: map[object.Identity]error{}}
	for _, level := range levels {
		if !e.runLevel(ctx, level, actions, result) {
			break
		}
	}
	return result
}

func (e *Executor) runLevel(ctx context.Context, level []object.Identity, actions map[object.Identity]*reconcile.Action, result *Result) bool {
	width := e.cfg.Parallelism
	if width <= 0 || width > len(level) {
		width = len(level)
	}
	if width == 0 {
		return true
	}
	sem := make(chan struct{}, width)

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := true
	for _, id := range level {
		action, found := actions[id]
		if !found {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(action *reconcile.Action) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := e.applyOne(ctx, action); err != nil {
				mu.Lock()
				result.Failed[action.Identity] = err
				ok = false
				mu.Unlock()
			}
		}(action)
	}
	wg.Wait()
	return ok
}

// applyOne runs the full per-object apply loop (§4.5): journal the
// pre-image, submit under retry, then poll readiness.
func (e *Executor) applyOne(ctx context.Context, action *reconcile.Action) error {
	if action.Kind == reconcile.NoAction {
		return nil
	}

	var preImage *object.CanonicalObject
	live, err := e.transport.Get(ctx, action.Identity)
	if err != nil {
		if !transport.IsNotFound(err) {
			return err
		}
	} else {
		preImage = live
	}
	e.journal.Append(journal.Entry{Identity: action.Identity, PreImage: preImage, Action: action.Kind})

	backoff := backoffFor(e.cfg.MaxAttempts)
	if err := withRetry(ctx, backoff, func() error { return e.submit(ctx, action) }); err != nil {
		return err
	}

	return e.waitReady(ctx, action.Identity)
}

func (e *Executor) submit(ctx context.Context, action *reconcile.Action) error {
	switch action.Kind {
	case reconcile.Create:
		return e.transport.Create(ctx, action.Desired)
	case reconcile.Patch:
		return e.transport.Patch(ctx, action.Identity, action.MergePatch)
	case reconcile.Replace:
		return e.transport.Replace(ctx, action.Desired)
	default:
		return fmt.Errorf("executor: unsupported action kind %v", action.Kind)
	}
}

func (e *Executor) waitReady(ctx context.Context, id object.Identity) error {
	if e.cfg.ReadinessTimeout <= 0 {
		return nil
	}
	deadline := time.Now().Add(e.cfg.ReadinessTimeout)
	for {
		obj, err := e.transport.Get(ctx, id)
		switch {
		case err != nil && !transport.IsNotFound(err) && !transport.IsTransient(err):
			return err
		case err == nil:
			ready, failed, reason := IsReady(obj)
			if failed {
				return &WorkloadFailedError{Identity: id, Reason: reason}
			}
			if ready {
				return nil
			}
		}

		if time.Now().After(deadline) {
			return &ReadinessTimeoutError{Identity: id, Waited: e.cfg.ReadinessTimeout}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(e.cfg.PollInterval):
		}
	}
}
