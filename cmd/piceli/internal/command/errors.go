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

package command

import "errors"

// exitCodeError lets a RunE return both a rendered message (already
// printed by the command via the viewer) and the specific process exit
// code §6 assigns to that outcome.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

func newExitCodeError(code int, msg string) error {
	return &exitCodeError{code: code, msg: msg}
}

func asExitCodeError(err error, target **exitCodeError) bool {
	return errors.As(err, target)
}
