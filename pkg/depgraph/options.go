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

import "github.com/pynenc/piceli/pkg/object"

// ExternalRef names an object the caller attests exists outside the input
// set, so Plan with validation enabled does not treat a reference to it as
// dangling.
type ExternalRef struct {
	Kind      string
	Namespace string
	Name      string
}

// SelectorMatcher decides whether a Service's selector matches a
// candidate's pod template labels (edge rule 7). The exact matching
// strategy is left open by the specification; WithSelectorMatcher lets a
// caller swap it in, defaulting to subsetMatch.
type SelectorMatcher func(selector, candidateLabels map[string]string) bool

type options struct {
	validate        bool
	externalRefs    map[object.Identity][]ExternalRef
	selectorMatcher SelectorMatcher
}

func defaultOptions() options {
	return options{
		selectorMatcher: subsetMatch,
	}
}

// PlanOption configures a single Plan invocation.
type PlanOption func(*options)

// WithValidate enables the extra pass that rejects unresolved
// cross-references not covered by WithExternalRefs.
func WithValidate(validate bool) PlanOption {
	return func(o *options) { o.validate = validate }
}

// WithExternalRefs attests that the named (kind, namespace, name) targets
// referenced by the given identities exist outside the input set, so
// validation does not flag them as dangling.
func WithExternalRefs(refs map[object.Identity][]ExternalRef) PlanOption {
	return func(o *options) { o.externalRefs = refs }
}

// WithSelectorMatcher overrides the default Service-selector-to-pod-labels
// matching strategy used by edge rule 7.
func WithSelectorMatcher(matcher SelectorMatcher) PlanOption {
	return func(o *options) { o.selectorMatcher = matcher }
}

// subsetMatch is the default SelectorMatcher: every key/value pair in
// selector must be present, with an equal value, in candidateLabels.
func subsetMatch(selector, candidateLabels map[string]string) bool {
	if len(selector) == 0 {
		return false
	}
	for k, v := range selector {
		if candidateLabels[k] != v {
			return false
		}
	}
	return true
}

func (o options) isExternal(from object.Identity, ref ExternalRef) bool {
	for _, ext := range o.externalRefs[from] {
		if ext == ref {
			return true
		}
	}
	return false
}
