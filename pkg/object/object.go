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

package object

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/pynenc/piceli/pkg/spectree"
)

// CanonicalObject is the loader-normalized representation of a Kubernetes
// resource used internally by the core, independent of the source format
// (structured template, raw manifest, or programmatic construction).
//
// CanonicalObjects are immutable after loader emission: every accessor
// below returns read-only views; nothing on this type mutates Spec.
type CanonicalObject struct {
	identity    Identity
	labels      map[string]string
	annotations map[string]string
	spec        *spectree.Node
	// origin is an opaque diagnostic tag: a source path, a module
	// reference, or a template lineage. Never interpreted by the core,
	// only surfaced in diagnostics (`model list`).
	origin string
}

// New constructs a CanonicalObject. labels and annotations are copied
// defensively; spec is retained by reference since spectree.Node is treated
// as immutable once handed to the core.
func New(id Identity, labels, annotations map[string]string, spec *spectree.Node, origin string) *CanonicalObject {
	return &CanonicalObject{
		identity:    id,
		labels:      copyStringMap(labels),
		annotations: copyStringMap(annotations),
		spec:        spec,
		origin:      origin,
	}
}

func copyStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Identity returns the object's identity tuple.
func (o *CanonicalObject) Identity() Identity { return o.identity }

// Labels returns a copy of the object's labels.
func (o *CanonicalObject) Labels() map[string]string { return copyStringMap(o.labels) }

// Annotations returns a copy of the object's annotations.
func (o *CanonicalObject) Annotations() map[string]string { return copyStringMap(o.annotations) }

// Spec returns the root of the object's spec tree. Callers must not mutate
// it; use WithSpec to derive a modified copy.
func (o *CanonicalObject) Spec() *spectree.Node { return o.spec }

// Origin returns the opaque diagnostic tag describing where this object
// came from.
func (o *CanonicalObject) Origin() string { return o.origin }

// WithSpec returns a shallow copy of o with its spec tree replaced. Used by
// the fake transport to store a patched object without mutating the
// original.
func (o *CanonicalObject) WithSpec(spec *spectree.Node) *CanonicalObject {
	cp := *o
	cp.spec = spec
	return &cp
}

// ToUnstructured renders the object into the wire JSON shape expected by
// the cluster transport: apiVersion/kind/metadata plus the flattened spec
// tree fields merged in at the top level (the spec tree root is expected to
// already contain "spec"/"status"/etc as its own top-level keys, mirroring
// how a full Kubernetes manifest is shaped).
func (o *CanonicalObject) ToUnstructured() *unstructured.Unstructured {
	body := map[string]interface{}{}
	if o.spec != nil {
		if m, ok := spectree.ToInterface(o.spec).(map[string]interface{}); ok {
			body = m
		}
	}

	body["apiVersion"] = o.identity.GVK.GroupVersion().String()
	body["kind"] = o.identity.GVK.Kind

	metadata, _ := body["metadata"].(map[string]interface{})
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadata["name"] = o.identity.Name
	if o.identity.Namespace != "" {
		metadata["namespace"] = o.identity.Namespace
	}
	if len(o.labels) > 0 {
		metadata["labels"] = stringMapToInterface(o.labels)
	}
	if len(o.annotations) > 0 {
		metadata["annotations"] = stringMapToInterface(o.annotations)
	}
	body["metadata"] = metadata

	return &unstructured.Unstructured{Object: body}
}

// FromUnstructured builds a CanonicalObject from a live cluster object
// (e.g. returned by a GET), tagging it with the given origin.
func FromUnstructured(u *unstructured.Unstructured, origin string) *CanonicalObject {
	gvk := u.GroupVersionKind()
	id := Identity{GVK: gvk, Namespace: u.GetNamespace(), Name: u.GetName()}

	labels := u.GetLabels()
	annotations := u.GetAnnotations()

	spec := spectree.FromInterface(u.Object)

	return New(id, labels, annotations, spec, origin)
}

func stringMapToInterface(m map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
