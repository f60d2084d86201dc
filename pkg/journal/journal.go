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

import "sync"

// Journal is the only mutable structure shared across the executor's
// per-level worker pool; every append is serialized by a single mutex so
// concurrent workers within a level never race on it.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty Journal.
func New() *Journal {
	return &Journal{}
}

// Append records one apply step. Entries accumulate in apply order; Replay
// walks them in the opposite order, since rollback must undo the most
// recent mutation first.
func (j *Journal) Append(e Entry) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, e)
}

// Len returns the number of recorded entries.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Entries returns a snapshot of the recorded entries in apply order.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Replay invokes undo once per entry in reverse apply order (most recent
// mutation first). A failing undo does not stop the replay: it is recorded
// in the summary's Failed list and the remaining entries are still undone.
// Callers pass
// a closure that knows how to apply a single pre-image (or delete, when
// PreImage is nil) against the transport.
func (j *Journal) Replay(undo func(Entry) error) *RollbackSummary {
	entries := j.Entries()
	summary := &RollbackSummary{}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if err := undo(e); err != nil {
			summary.Failed = append(summary.Failed, &RollbackStepError{Identity: e.Identity, Err: err})
			continue
		}
		summary.Restored = append(summary.Restored, e.Identity)
	}
	return summary
}
