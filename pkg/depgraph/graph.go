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

// Package depgraph implements the dependency resolver (C2): it derives
// edges between CanonicalObjects from references and kind rules, builds a
// DAG, and produces a level-ordered apply schedule.
package depgraph

import (
	"sort"

	"github.com/pynenc/piceli/pkg/graph/dag"
	"github.com/pynenc/piceli/pkg/object"
)

// Layered is the public shape of a resolved plan: an ordered sequence of
// levels, each a set of object identities with no mutual dependencies.
type Layered struct {
	Levels [][]object.Identity
}

// Len returns the number of levels.
func (l *Layered) Len() int { return len(l.Levels) }

// Level returns the identities in level i.
func (l *Layered) Level(i int) []object.Identity { return l.Levels[i] }

// Plan builds the layered deployment schedule for objects. With
// WithValidate(true), it additionally rejects cross-references that do not
// resolve within objects and were not attested via WithExternalRefs.
func Plan(objects []*object.CanonicalObject, opts ...PlanOption) (*Layered, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	set, err := object.NewSet(objects)
	if err != nil {
		return nil, err
	}

	edges, dangling := buildEdges(set, cfg)
	if cfg.validate && len(dangling) > 0 {
		return nil, &DanglingReferenceError{Refs: dangling}
	}

	ids := set.Identities()
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	d := dag.NewDirectedAcyclicGraph[object.Identity]()
	for i, id := range ids {
		// AddVertex only fails on a duplicate key, which object.NewSet has
		// already ruled out.
		_ = d.AddVertex(id, i)
	}

	for _, id := range ids {
		deps := edges[id]
		if len(deps) == 0 {
			continue
		}
		if err := d.AddDependencies(id, deps); err != nil {
			if ce := dag.AsCycleError[object.Identity](err); ce != nil {
				return nil, &CycleError{Cycle: ce.Cycle}
			}
			return nil, err
		}
	}

	levels, err := d.TopologicalSortLevels()
	if err != nil {
		if ce := dag.AsCycleError[object.Identity](err); ce != nil {
			return nil, &CycleError{Cycle: ce.Cycle}
		}
		return nil, err
	}
	return &Layered{Levels: levels}, nil
}
