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

// Package object implements the Canonical Object Model (C1): a uniform
// in-memory representation of any Kubernetes object regardless of the
// loader source that produced it (structured template, raw manifest, or
// programmatic construction).
package object

import (
	"fmt"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Identity is the globally-unique key of a CanonicalObject within a
// deployment: (group, version, kind, namespace, name). Namespace is empty
// for cluster-scoped kinds.
type Identity struct {
	GVK       schema.GroupVersionKind
	Namespace string
	Name      string
}

// NewIdentity builds an Identity from its components.
func NewIdentity(group, version, kind, namespace, name string) Identity {
	return Identity{
		GVK:       schema.GroupVersionKind{Group: group, Version: version, Kind: kind},
		Namespace: namespace,
		Name:      name,
	}
}

// String renders a stable diagnostic form: "group/version, Kind=Kind
// namespace/name". Cluster-scoped objects omit the namespace segment.
func (id Identity) String() string {
	gvk := id.GVK.String()
	if id.Namespace == "" {
		return fmt.Sprintf("%s %s", gvk, id.Name)
	}
	return fmt.Sprintf("%s %s/%s", gvk, id.Namespace, id.Name)
}

// Less gives the stable tie-breaking order used by level assignment:
// (kind, namespace, name).
func (id Identity) Less(other Identity) bool {
	if id.GVK.Kind != other.GVK.Kind {
		return id.GVK.Kind < other.GVK.Kind
	}
	if id.Namespace != other.Namespace {
		return id.Namespace < other.Namespace
	}
	return id.Name < other.Name
}
