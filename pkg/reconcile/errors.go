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
	"fmt"

	"github.com/pynenc/piceli/pkg/object"
)

// ReplaceBlockedError describes a REPLACE that cannot be carried out (e.g.
// the delete half is rejected by an admission webhook, or the create half
// fails immediately after deletion). The executor does not return it: a
// failed REPLACE surfaces as the transport's own Delete or Create error.
type ReplaceBlockedError struct {
	Identity object.Identity
	Err      error
}

func (e *ReplaceBlockedError) Error() string {
	return fmt.Sprintf("replace blocked for %s: %v", e.Identity, e.Err)
}

func (e *ReplaceBlockedError) Unwrap() error { return e.Err }
