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

package journal

import (
	"fmt"
	"strings"

	"github.com/pynenc/piceli/pkg/object"
)

// RollbackStepError records a single undo step that failed during Replay.
type RollbackStepError struct {
	Identity object.Identity
	Err      error
}

func (e *RollbackStepError) Error() string {
	return fmt.Sprintf("rollback step failed for %s: %v", e.Identity, e.Err)
}

func (e *RollbackStepError) Unwrap() error { return e.Err }

// RollbackSummary is the outcome of a full Replay: every identity
// successfully restored or deleted, and every step that failed along the
// way. A non-empty Failed means the cluster was left in a partially rolled
// back state; Kubernetes offers no transactions, so this is the best-effort
// outcome the executor can report.
type RollbackSummary struct {
	Restored []object.Identity
	Failed   []*RollbackStepError
}

// OK reports whether every rollback step succeeded.
func (s *RollbackSummary) OK() bool { return len(s.Failed) == 0 }

func (s *RollbackSummary) Error() string {
	if s.OK() {
		return ""
	}
	parts := make([]string, len(s.Failed))
	for i, f := range s.Failed {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("rollback incomplete: %s", strings.Join(parts, "; "))
}
