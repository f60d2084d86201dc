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

package depgraph

import "github.com/pynenc/piceli/pkg/object"

// clusterScopedKinds lists the kinds edge inference treats as cluster-
// scoped: a reference to one never inherits the referrer's namespace.
var clusterScopedKinds = map[string]bool{
	"ClusterRole":        true,
	"ClusterRoleBinding": true,
	"Namespace":          true,
	"StorageClass":       true,
	"PersistentVolume":   true,
}

// IsClusterScoped reports whether kind is treated as cluster-scoped by edge
// inference. Exposed so callers outside this package (namespace-override
// handling in pkg/engine) can apply the same rule consistently.
func IsClusterScoped(kind string) bool {
	return clusterScopedKinds[kind]
}

// lookupKey identifies an object by kind/namespace/name only, ignoring
// group/version — edge references (role refs, scaleTargetRef, and so on)
// are expressed in the Kubernetes API as bare kind names, never full GVKs.
type lookupKey struct {
	Kind      string
	Namespace string
	Name      string
}

func buildLookup(objs *object.Set) map[lookupKey]object.Identity {
	idx := make(map[lookupKey]object.Identity, objs.Len())
	for _, o := range objs.All() {
		id := o.Identity()
		idx[lookupKey{Kind: id.GVK.Kind, Namespace: id.Namespace, Name: id.Name}] = id
	}
	return idx
}

// resolveReference resolves a Reference named by from into a concrete
// Identity present in objs, applying the implicit-same-namespace rule for
// namespaced kinds. ok is false if the target is not in the input set.
func resolveReference(from object.Identity, ref object.Reference, lookup map[lookupKey]object.Identity) (object.Identity, bool) {
	ns := ref.Namespace
	if !clusterScopedKinds[ref.Kind] && ns == "" {
		ns = from.Namespace
	}
	id, ok := lookup[lookupKey{Kind: ref.Kind, Namespace: ns, Name: ref.Name}]
	return id, ok
}

// buildEdges applies edge inference rules 1-7 (§4.2) to every object in
// objs, returning each object's resolved dependencies and any references
// that validation should flag as dangling.
func buildEdges(objs *object.Set, cfg options) (map[object.Identity][]object.Identity, []DanglingRef) {
	lookup := buildLookup(objs)
	edges := make(map[object.Identity][]object.Identity, objs.Len())
	var dangling []DanglingRef

	for _, obj := range objs.All() {
		id := obj.Identity()
		var deps []object.Identity
		seen := map[object.Identity]bool{}
		add := func(dep object.Identity) {
			if seen[dep] {
				return
			}
			seen[dep] = true
			deps = append(deps, dep)
		}

		// Rule 1: namespace containment.
		if id.Namespace != "" {
			nsID, ok := lookup[lookupKey{Kind: "Namespace", Name: id.Namespace}]
			if ok {
				add(nsID)
			}
		}

		// Rules 2-6, via the per-kind extractor table.
		for _, ref := range extractReferences(obj) {
			depID, ok := resolveReference(id, ref, lookup)
			if ok {
				add(depID)
				continue
			}
			if cfg.validate && !cfg.isExternal(id, ExternalRef(ref)) {
				dangling = append(dangling, DanglingRef{From: id, Kind: ref.Kind, Namespace: ref.Namespace, Name: ref.Name})
			}
		}

		edges[id] = deps
	}

	// Rule 7: Service -> workload, a reverse scan since it is the only rule
	// not expressed as an outgoing named reference.
	for _, svc := range objs.All() {
		if svc.Identity().GVK.Kind != "Service" {
			continue
		}
		selector := svc.Selector()
		if len(selector) == 0 {
			continue
		}
		for _, candidate := range objs.All() {
			if candidate.Identity() == svc.Identity() {
				continue
			}
			if candidate.Identity().Namespace != svc.Identity().Namespace {
				continue
			}
			labels := candidate.PodTemplateLabels()
			if labels == nil {
				continue
			}
			if cfg.selectorMatcher(selector, labels) {
				edges[svc.Identity()] = appendUnique(edges[svc.Identity()], candidate.Identity())
			}
		}
	}

	return edges, dangling
}

func appendUnique(deps []object.Identity, dep object.Identity) []object.Identity {
	for _, d := range deps {
		if d == dep {
			return deps
		}
	}
	return append(deps, dep)
}
