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

// Package engine orchestrates the full deploy pipeline (C1-C6) behind the
// three operations the CLI exposes: plan, detail, and run.
package engine

import (
	"context"
	"fmt"

	"github.com/pynenc/piceli/pkg/compare"
	"github.com/pynenc/piceli/pkg/config"
	"github.com/pynenc/piceli/pkg/depgraph"
	"github.com/pynenc/piceli/pkg/executor"
	"github.com/pynenc/piceli/pkg/journal"
	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/reconcile"
	"github.com/pynenc/piceli/pkg/spectree"
	"github.com/pynenc/piceli/pkg/transport"
)

// Engine ties the resolver, comparator, planner, and executor together
// against one transport.
type Engine struct {
	transport transport.Transport
	cfg       config.Config
}

// New builds an Engine for a single deploy invocation.
func New(t transport.Transport, cfg config.Config) *Engine {
	return &Engine{transport: t, cfg: cfg}
}

func (e *Engine) planOpts() []depgraph.PlanOption {
	opts := []depgraph.PlanOption{depgraph.WithValidate(e.cfg.Validate)}
	if e.cfg.SelectorMatch != nil {
		opts = append(opts, depgraph.WithSelectorMatcher(e.cfg.SelectorMatch))
	}
	return opts
}

// Plan builds the layered dependency schedule (C2) with no cluster
// interaction.
func (e *Engine) Plan(objects []*object.CanonicalObject) (*PlanResult, error) {
	objs := applyNamespaceOverride(objects, e.cfg)
	layered, err := depgraph.Plan(objs, e.planOpts()...)
	if err != nil {
		return nil, err
	}
	return &PlanResult{Layered: layered}, nil
}

// Detail builds the layered schedule and, for every object, fetches the
// live counterpart, runs the comparator, and derives the reconciliation
// action (C3 + C4), without mutating the cluster.
func (e *Engine) Detail(ctx context.Context, objects []*object.CanonicalObject) (*DetailResult, error) {
	objs := applyNamespaceOverride(objects, e.cfg)
	layered, err := depgraph.Plan(objs, e.planOpts()...)
	if err != nil {
		return nil, err
	}

	byIdentity := make(map[object.Identity]*object.CanonicalObject, len(objs))
	for _, o := range objs {
		byIdentity[o.Identity()] = o
	}

	var details []ObjectDetail
	for i := 0; i < layered.Len(); i++ {
		for _, id := range layered.Level(i) {
			desired := byIdentity[id]
			detail, err := e.detailOne(ctx, id, desired)
			if err != nil {
				return nil, err
			}
			details = append(details, *detail)
		}
	}
	return &DetailResult{Layered: layered, Details: details}, nil
}

func (e *Engine) detailOne(ctx context.Context, id object.Identity, desired *object.CanonicalObject) (*ObjectDetail, error) {
	live, err := e.transport.Get(ctx, id)
	if err != nil {
		if !transport.IsNotFound(err) {
			return nil, fmt.Errorf("detail %s: %w", id, err)
		}
		live = nil
	}

	var cmp *compare.Result
	if live != nil {
		cmp = compare.Compare(live.Spec(), desired.Spec(), id.GVK.Kind)
	}
	action := reconcile.Plan(live, desired, cmp)

	return &ObjectDetail{Identity: id, Live: live, Desired: desired, Compare: cmp, Action: action}, nil
}

// Deploy runs the full pipeline: plan, detail, execute. On executor
// failure it replays the journal to roll back every mutation this
// invocation made, best-effort, and reports the outcome in Rollback.
func (e *Engine) Deploy(ctx context.Context, objects []*object.CanonicalObject) (*DeployResult, error) {
	detail, err := e.Detail(ctx, objects)
	if err != nil {
		return nil, err
	}

	if e.cfg.CreateNamespace && e.cfg.Namespace != "" {
		if err := e.ensureNamespace(ctx); err != nil {
			return nil, fmt.Errorf("ensure namespace %q: %w", e.cfg.Namespace, err)
		}
	}

	actions := make(map[object.Identity]*reconcile.Action, len(detail.Details))
	for _, d := range detail.Details {
		actions[d.Identity] = d.Action
	}

	j := journal.New()
	ex := executor.New(e.transport, j, executor.Config{
		Parallelism:      e.cfg.Parallelism,
		MaxAttempts:      e.cfg.MaxAttempts,
		ReadinessTimeout: e.cfg.ReadinessTimeout,
	})

	result := ex.Run(ctx, detail.Layered.Levels, actions)
	out := &DeployResult{Detail: detail, Exec: result}
	if result.OK() {
		return out, nil
	}

	out.Rollback = j.Replay(func(entry journal.Entry) error {
		if entry.PreImage == nil {
			return e.transport.Delete(ctx, entry.Identity)
		}
		return e.transport.Replace(ctx, entry.PreImage)
	})
	return out, &DeployFailedError{Failed: result.Failed, Rollback: out.Rollback}
}

func (e *Engine) ensureNamespace(ctx context.Context) error {
	id := object.NewIdentity("", "v1", "Namespace", "", e.cfg.Namespace)
	if _, err := e.transport.Get(ctx, id); err == nil {
		return nil
	} else if !transport.IsNotFound(err) {
		return err
	}
	ns := object.New(id, nil, nil, spectree.Map(), "synthetic")
	return e.transport.Create(ctx, ns)
}
