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

// Package reconcile implements the reconciliation planner (C4): given a
// comparator result for one object, it chooses CREATE, PATCH, REPLACE, or
// NO_ACTION using kind-specific immutability policy.
package reconcile

import (
	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/spectree"
)

// Kind identifies which of the four reconciliation actions to take.
type Kind int

const (
	NoAction Kind = iota
	Create
	Patch
	Replace
)

func (k Kind) String() string {
	switch k {
	case NoAction:
		return "NO_ACTION"
	case Create:
		return "CREATE"
	case Patch:
		return "PATCH"
	case Replace:
		return "REPLACE"
	default:
		return "UNKNOWN"
	}
}

// Action is the planner's decision for one object: a kind plus the minimal
// payload the transport needs to carry it out.
type Action struct {
	Kind     Kind
	Identity object.Identity
	// Desired is populated for Create and Replace.
	Desired *object.CanonicalObject
	// MergePatch is populated for Patch: a spec tree containing only the
	// Differing paths, nested under their original structure.
	MergePatch *spectree.Node
}
