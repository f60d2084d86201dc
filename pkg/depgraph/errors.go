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

import (
	"fmt"
	"strings"

	"github.com/pynenc/piceli/pkg/object"
)

// CycleError reports one witnessing dependency cycle found while planning.
type CycleError struct {
	Cycle []object.Identity
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, id := range e.Cycle {
		parts[i] = id.String()
	}
	return fmt.Sprintf("dependency cycle: %s", strings.Join(parts, " -> "))
}

// DanglingRef names a single unresolved, non-external cross-reference found
// during validated planning.
type DanglingRef struct {
	From      object.Identity
	Kind      string
	Namespace string
	Name      string
}

func (r DanglingRef) String() string {
	if r.Namespace == "" {
		return fmt.Sprintf("%s references missing %s %q", r.From, r.Kind, r.Name)
	}
	return fmt.Sprintf("%s references missing %s %s/%s", r.From, r.Kind, r.Namespace, r.Name)
}

// DanglingReferenceError is returned by Plan when WithValidate(true) is set
// and one or more cross-references do not resolve within the input set and
// were not attested via WithExternalRefs.
type DanglingReferenceError struct {
	Refs []DanglingRef
}

func (e *DanglingReferenceError) Error() string {
	parts := make([]string, len(e.Refs))
	for i, r := range e.Refs {
		parts[i] = r.String()
	}
	return fmt.Sprintf("dangling references: %s", strings.Join(parts, "; "))
}
