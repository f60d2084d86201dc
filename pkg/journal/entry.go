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

// Package journal implements the deploy journal (C6): an append-only record
// of pre-images the executor writes immediately before mutating each object,
// consumed by rollback to restore cluster state after a failed deployment.
package journal

import (
	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/reconcile"
)

// Entry is one recorded apply step. PreImage is the live object read
// immediately before mutation, or nil if the object did not exist (i.e. the
// action was a CREATE, so rollback must delete rather than restore).
type Entry struct {
	Identity object.Identity
	PreImage *object.CanonicalObject
	Action   reconcile.Kind
}
