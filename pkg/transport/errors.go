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

package transport

import (
	"errors"
	"fmt"

	"github.com/pynenc/piceli/pkg/object"
)

// NotFoundError is returned by Get when the object does not exist in the
// cluster. It is neither transient nor terminal by itself — callers decide
// what it means (CREATE target, or a genuinely missing reference).
type NotFoundError struct {
	Identity object.Identity
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found", e.Identity)
}

// TransientError indicates a failure the executor should retry with
// backoff: network errors, resource-version conflicts, HTTP 429.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string { return fmt.Sprintf("%s (retriable): %v", e.Op, e.Err) }
func (e *TransientError) Unwrap() error { return e.Err }

// TerminalError indicates a failure the executor should not retry:
// validation rejections, forbidden admission, and the like fail the level.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *TerminalError) Unwrap() error { return e.Err }

// TimeoutError reports that readiness never arrived within the configured
// window; the executor treats it as terminal for the level.
type TimeoutError struct {
	Identity object.Identity
	Waited   string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: readiness timeout after %s", e.Identity, e.Waited)
}

// IsNotFound reports whether err (or any error in its chain) is a
// NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsTransient reports whether err (or any error in its chain) is a
// TransientError.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// IsTerminal reports whether err (or any error in its chain) is a
// TerminalError or a TimeoutError — a failure the executor should not
// retry.
func IsTerminal(err error) bool {
	var te *TerminalError
	if errors.As(err, &te) {
		return true
	}
	var to *TimeoutError
	return errors.As(err, &to)
}
