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

package engine

import (
	"github.com/pynenc/piceli/pkg/config"
	"github.com/pynenc/piceli/pkg/depgraph"
	"github.com/pynenc/piceli/pkg/object"
)

// applyNamespaceOverride rewrites every namespaced object's identity to
// cfg.Namespace, honoring cfg.NamespaceOverrideWins (Open Question #3):
// when true (the default) an object that already names an explicit
// namespace keeps it; the override only fills in objects that left it
// blank. Cluster-scoped kinds are never touched.
func applyNamespaceOverride(objs []*object.CanonicalObject, cfg config.Config) []*object.CanonicalObject {
	if cfg.Namespace == "" {
		return objs
	}
	out := make([]*object.CanonicalObject, len(objs))
	for i, o := range objs {
		id := o.Identity()
		if depgraph.IsClusterScoped(id.GVK.Kind) {
			out[i] = o
			continue
		}
		if cfg.NamespaceOverrideWins && id.Namespace != "" {
			out[i] = o
			continue
		}
		if id.Namespace == cfg.Namespace {
			out[i] = o
			continue
		}
		newID := object.Identity{GVK: id.GVK, Namespace: cfg.Namespace, Name: id.Name}
		out[i] = object.New(newID, o.Labels(), o.Annotations(), o.Spec(), o.Origin())
	}
	return out
}
