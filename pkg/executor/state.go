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

// ObjectState tracks one object's progress through a deploy: Pending until
// its level starts, Running while the apply loop is in flight, Completed or
// Failed once it settles, and RollingBack/RolledBack/RollbackFailed if the
// overall deployment aborts and undoes its work.
type ObjectState int

const (
	Pending ObjectState = iota
	Running
	Completed
	Failed
	RollingBack
	RolledBack
	RollbackFailed
)

func (s ObjectState) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Running:
		return "Running"
	case Completed:
		return "Completed"
	case Failed:
		return "Failed"
	case RollingBack:
		return "RollingBack"
	case RolledBack:
		return "RolledBack"
	case RollbackFailed:
		return "RollbackFailed"
	default:
		return "Unknown"
	}
}
