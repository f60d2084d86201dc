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
	"fmt"

	"github.com/pynenc/piceli/pkg/journal"
	"github.com/pynenc/piceli/pkg/object"
)

// DeployFailedError wraps the executor's per-object failures together with
// the rollback outcome the engine attempted in response.
type DeployFailedError struct {
	Failed   map[object.Identity]error
	Rollback *journal.RollbackSummary
}

func (e *DeployFailedError) Error() string {
	if e.Rollback.OK() {
		return fmt.Sprintf("deploy failed (%d object(s)), rollback complete", len(e.Failed))
	}
	return fmt.Sprintf("deploy failed (%d object(s)): %s", len(e.Failed), e.Rollback.Error())
}
