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

// Package fake implements an in-memory transport for exercising the
// executor and journal without a real cluster.
package fake

import (
	"context"
	"sync"

	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/spectree"
	"github.com/pynenc/piceli/pkg/transport"
)

// Transport is a mutex-guarded in-memory store of CanonicalObjects,
// satisfying transport.Transport. Failures can be injected per identity
// (FailNext) to exercise the executor's retry and rollback paths; there is
// no delay injection.
type Transport struct {
	mu      sync.Mutex
	objects map[object.Identity]*object.CanonicalObject

	// FailNext, when set for an identity, is returned once by the next
	// call to any mutating method for that identity, then cleared.
	FailNext map[object.Identity]error
}

var _ transport.Transport = (*Transport)(nil)

// New returns an empty fake transport.
func New() *Transport {
	return &Transport{
		objects:  make(map[object.Identity]*object.CanonicalObject),
		FailNext: make(map[object.Identity]error),
	}
}

// Seed pre-populates the store, as if these objects already existed in the
// cluster before the deploy began.
func (t *Transport) Seed(objs ...*object.CanonicalObject) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, o := range objs {
		t.objects[o.Identity()] = o
	}
}

func (t *Transport) takeFailure(id object.Identity) error {
	if err, ok := t.FailNext[id]; ok {
		delete(t.FailNext, id)
		return err
	}
	return nil
}

func (t *Transport) Get(ctx context.Context, id object.Identity) (*object.CanonicalObject, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	obj, ok := t.objects[id]
	if !ok {
		return nil, &transport.NotFoundError{Identity: id}
	}
	return obj, nil
}

func (t *Transport) Create(ctx context.Context, obj *object.CanonicalObject) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := obj.Identity()
	if err := t.takeFailure(id); err != nil {
		return err
	}
	t.objects[id] = obj
	return nil
}

func (t *Transport) Patch(ctx context.Context, id object.Identity, mergePatch *spectree.Node) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.takeFailure(id); err != nil {
		return err
	}
	existing, ok := t.objects[id]
	if !ok {
		return &transport.NotFoundError{Identity: id}
	}
	t.objects[id] = existing.WithSpec(mergeSpec(existing.Spec(), mergePatch))
	return nil
}

func (t *Transport) Replace(ctx context.Context, obj *object.CanonicalObject) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := obj.Identity()
	if err := t.takeFailure(id); err != nil {
		return err
	}
	t.objects[id] = obj
	return nil
}

func (t *Transport) Delete(ctx context.Context, id object.Identity) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.takeFailure(id); err != nil {
		return err
	}
	delete(t.objects, id)
	return nil
}

func (t *Transport) Watch(ctx context.Context, id object.Identity) (<-chan *object.CanonicalObject, bool) {
	return nil, false
}

// mergeSpec applies a JSON-merge-patch-style overlay of patch onto base:
// every leaf present in patch overwrites the corresponding base path, maps
// merge key-by-key, everything else is replaced wholesale.
func mergeSpec(base, patch *spectree.Node) *spectree.Node {
	if patch == nil || patch.Kind == spectree.KindNull {
		return base
	}
	if patch.Kind != spectree.KindMap || base == nil || base.Kind != spectree.KindMap {
		return patch
	}
	merged := make(map[string]*spectree.Node, len(base.Map))
	order := make([]string, 0, len(base.Map))
	for _, e := range base.Map {
		merged[e.Key] = e.Value
		order = append(order, e.Key)
	}
	for _, e := range patch.Map {
		if _, exists := merged[e.Key]; !exists {
			order = append(order, e.Key)
		}
		merged[e.Key] = mergeSpec(merged[e.Key], e.Value)
	}
	entries := make([]spectree.Entry, len(order))
	for i, k := range order {
		entries[i] = spectree.Entry{Key: k, Value: merged[k]}
	}
	return spectree.Map(entries...)
}
