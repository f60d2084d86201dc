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

// Package config holds the knobs shared across a single deploy invocation:
// the ones spec.md names directly, and the ones it leaves as open
// questions with a recorded default.
package config

import (
	"time"

	"github.com/pynenc/piceli/pkg/depgraph"
)

// Config is passed down from the CLI into pkg/engine for every command.
type Config struct {
	// Namespace, when set, is the namespace namespaced objects are
	// deployed into; NamespaceOverrideWins decides the case where an
	// object already names its own.
	Namespace string

	// NamespaceOverrideWins decides which side wins when an object
	// already names an explicit namespace and Namespace is also set.
	// Default true: the object's own namespace wins (spec.md's stated
	// assumption, Open Question #3).
	NamespaceOverrideWins bool

	// Validate runs the full dependency-resolver validation pass (cycles,
	// dangling references) before planning, as `deploy plan -v` does.
	Validate bool

	// SelectorMatch overrides rule 7's Service→workload matching
	// strategy (Open Question #1). Nil selects the resolver's default
	// strict label-subset match.
	SelectorMatch depgraph.SelectorMatcher

	// ReadinessTimeout bounds how long the executor waits for an
	// object's readiness predicate after apply. Zero means no readiness
	// wait is enforced beyond apply-acknowledged (Open Question #2) —
	// there is deliberately no non-zero default.
	ReadinessTimeout time.Duration

	// Parallelism bounds concurrent Actions within a level; 0 means
	// unbounded.
	Parallelism int

	// MaxAttempts caps submit retries per object on transient failures.
	MaxAttempts int

	// CreateNamespace mirrors `deploy run -c`: create the target
	// namespace before level 0 if it does not already exist.
	CreateNamespace bool

	// LoaderSource is an opaque pass-through describing where the object
	// set came from (e.g. a directory path); the loader itself is out of
	// scope, this is only surfaced in diagnostics.
	LoaderSource string
}

// Default returns a Config with every documented Open Question default
// applied.
func Default() Config {
	return Config{
		NamespaceOverrideWins: true,
	}
}
