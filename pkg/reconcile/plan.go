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

package reconcile

import (
	"strings"

	"github.com/pynenc/piceli/pkg/compare"
	"github.com/pynenc/piceli/pkg/object"
)

// Plan decides the reconciliation action for one object (§4.4): live is the
// cluster's current state (nil if the object does not exist yet); desired
// is the target state; cmp is the comparator result between them (nil when
// live is nil, since there is nothing to compare against).
func Plan(live, desired *object.CanonicalObject, cmp *compare.Result) *Action {
	identity := desired.Identity()

	if live == nil {
		return &Action{Kind: Create, Identity: identity, Desired: desired}
	}
	if !cmp.NeedsAction {
		return &Action{Kind: NoAction, Identity: identity}
	}

	kind := identity.GVK.Kind
	var patchPaths []string
	seen := map[string]bool{}
	for _, e := range cmp.Entries {
		if e.Classification != compare.Differing {
			continue
		}
		if requiresReplace(kind, e.Path) {
			return &Action{Kind: Replace, Identity: identity, Desired: desired}
		}
		p := truncateAtIndex(e.Path)
		if seen[p] {
			continue
		}
		seen[p] = true
		patchPaths = append(patchPaths, p)
	}

	return &Action{
		Kind:       Patch,
		Identity:   identity,
		MergePatch: buildMergePatch(desired.Spec(), patchPaths),
	}
}

// truncateAtIndex shortens a diff path to the nearest enclosing field that
// is not inside a sequence: JSON merge patch replaces arrays wholesale, so
// a Differing path under `containers[0].image` patches at `containers`.
func truncateAtIndex(path string) string {
	if i := strings.IndexByte(path, '['); i >= 0 {
		return path[:i]
	}
	return path
}
