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
	"fmt"
	"time"

	"github.com/pynenc/piceli/pkg/object"
)

// ReadinessTimeoutError is returned when an object never satisfies its
// kind's readiness predicate within the configured window.
type ReadinessTimeoutError struct {
	Identity object.Identity
	Waited   time.Duration
	Reason   string
}

func (e *ReadinessTimeoutError) Error() string {
	return fmt.Sprintf("%s: readiness timeout after %s: %s", e.Identity, e.Waited, e.Reason)
}

// WorkloadFailedError is returned when a kind's readiness predicate detects
// a terminal failure (e.g. a Job reporting failed pods).
type WorkloadFailedError struct {
	Identity object.Identity
	Reason   string
}

func (e *WorkloadFailedError) Error() string {
	return fmt.Sprintf("%s: workload failed: %s", e.Identity, e.Reason)
}
