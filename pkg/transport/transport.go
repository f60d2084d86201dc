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

// Package transport defines the boundary between the core and the cluster:
// a minimal set of operations the executor drives the deployment through,
// and the typed error taxonomy it uses to tell transient failures (worth
// retrying) from terminal ones (worth failing the level over).
package transport

import (
	"context"

	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/spectree"
)

// Transport is the boundary the executor drives the deployment through.
// Implementations must be safe for concurrent use: the executor calls these
// methods from multiple goroutines within a level.
type Transport interface {
	// Get fetches the live object. It returns a *NotFoundError (checkable
	// with IsNotFound) when the object does not exist.
	Get(ctx context.Context, id object.Identity) (*object.CanonicalObject, error)
	Create(ctx context.Context, obj *object.CanonicalObject) error
	Patch(ctx context.Context, id object.Identity, mergePatch *spectree.Node) error
	Replace(ctx context.Context, obj *object.CanonicalObject) error
	Delete(ctx context.Context, id object.Identity) error

	// Watch streams updates for id, if the implementation supports it. A
	// nil channel and ok=false tells the caller to fall back to polling.
	Watch(ctx context.Context, id object.Identity) (ch <-chan *object.CanonicalObject, ok bool)
}
