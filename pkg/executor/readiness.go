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

package executor

import (
	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/spectree"
)

// readinessFunc inspects a freshly-fetched live object and reports whether
// it is ready, whether it has failed terminally, and why.
type readinessFunc func(obj *object.CanonicalObject) (ready, failed bool, reason string)

var readinessChecks = map[string]readinessFunc{
	"Deployment":  workloadReadiness,
	"StatefulSet": workloadReadiness,
	"Job":         jobReadiness,
	"Namespace":   namespaceReadiness,
}

// IsReady applies the kind-specific readiness predicate (§4.5). Kinds with
// no registered predicate count as ready as soon as the apply is
// acknowledged by the server.
func IsReady(obj *object.CanonicalObject) (ready, failed bool, reason string) {
	fn, ok := readinessChecks[obj.Identity().GVK.Kind]
	if !ok {
		return true, false, "apply-acknowledged"
	}
	return fn(obj)
}

func workloadReadiness(obj *object.CanonicalObject) (bool, bool, string) {
	root := obj.Spec()
	generation := asInt(spectree.Path(root, "metadata", "generation"), 0)
	observed := asInt(spectree.Path(root, "status", "observedGeneration"), 0)
	if observed < generation {
		return false, false, "observedGeneration behind generation"
	}
	replicas := asInt(spectree.Path(root, "spec", "replicas"), 1)
	ready := asInt(spectree.Path(root, "status", "readyReplicas"), 0)
	if ready < replicas {
		return false, false, "waiting for ready replicas"
	}
	return true, false, ""
}

func jobReadiness(obj *object.CanonicalObject) (bool, bool, string) {
	root := obj.Spec()
	if asInt(spectree.Path(root, "status", "succeeded"), 0) >= 1 {
		return true, false, ""
	}
	if asInt(spectree.Path(root, "status", "failed"), 0) > 0 {
		return false, true, "job reported failed pods"
	}
	return false, false, "waiting for job completion"
}

func namespaceReadiness(obj *object.CanonicalObject) (bool, bool, string) {
	phase, _ := spectree.Path(obj.Spec(), "status", "phase").AsString()
	if phase == "Active" {
		return true, false, ""
	}
	return false, false, "waiting for namespace to become active"
}

func asInt(n *spectree.Node, def int64) int64 {
	if n == nil || n.Kind != spectree.KindInt {
		return def
	}
	return n.Int
}
