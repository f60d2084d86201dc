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
	"github.com/pynenc/piceli/pkg/compare"
	"github.com/pynenc/piceli/pkg/depgraph"
	"github.com/pynenc/piceli/pkg/executor"
	"github.com/pynenc/piceli/pkg/journal"
	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/reconcile"
)

// PlanResult is the output of building the layered schedule, with no
// cluster interaction (`deploy plan`).
type PlanResult struct {
	Layered *depgraph.Layered
}

// ObjectDetail is the per-object comparison behind `deploy detail`: live is
// nil when the object does not yet exist, in which case Compare is also
// nil and Action is always CREATE.
type ObjectDetail struct {
	Identity object.Identity
	Live     *object.CanonicalObject
	Desired  *object.CanonicalObject
	Compare  *compare.Result
	Action   *reconcile.Action
}

// DetailResult is the output of `deploy detail`: the layered schedule plus
// one ObjectDetail per object, in level order.
type DetailResult struct {
	Layered *depgraph.Layered
	Details []ObjectDetail
}

// DeployResult is the output of `deploy run`: the detail computed before
// execution, what the executor did, and — only if execution failed and
// rollback ran — the rollback outcome.
type DeployResult struct {
	Detail   *DetailResult
	Exec     *executor.Result
	Rollback *journal.RollbackSummary
}
