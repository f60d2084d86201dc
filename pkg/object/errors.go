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

package object

import "fmt"

// DuplicateIdentityError is an input error surfaced before planning: two
// objects in the same deployment share an identity.
type DuplicateIdentityError struct {
	Identity Identity
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("duplicate object identity: %s", e.Identity)
}

// MalformedObjectError wraps a loader-side construction failure (e.g. a
// spec tree that could not be decoded).
type MalformedObjectError struct {
	Origin string
	Err    error
}

func (e *MalformedObjectError) Error() string {
	return fmt.Sprintf("malformed object from %s: %v", e.Origin, e.Err)
}

func (e *MalformedObjectError) Unwrap() error { return e.Err }

// Set is a deduplicated, identity-indexed collection of CanonicalObjects,
// the in-memory shape the loader hands to the core (spec.md §6,
// "Loader → Core").
type Set struct {
	byIdentity map[Identity]*CanonicalObject
	order      []Identity
}

// NewSet builds a Set from a flat slice of objects, returning
// *DuplicateIdentityError if any two objects share an identity.
func NewSet(objects []*CanonicalObject) (*Set, error) {
	s := &Set{byIdentity: make(map[Identity]*CanonicalObject, len(objects))}
	for _, obj := range objects {
		id := obj.Identity()
		if _, exists := s.byIdentity[id]; exists {
			return nil, &DuplicateIdentityError{Identity: id}
		}
		s.byIdentity[id] = obj
		s.order = append(s.order, id)
	}
	return s, nil
}

// Get returns the object with the given identity, and whether it exists.
func (s *Set) Get(id Identity) (*CanonicalObject, bool) {
	obj, ok := s.byIdentity[id]
	return obj, ok
}

// All returns the objects in loader-emission order.
func (s *Set) All() []*CanonicalObject {
	out := make([]*CanonicalObject, len(s.order))
	for i, id := range s.order {
		out[i] = s.byIdentity[id]
	}
	return out
}

// Len returns the number of objects in the set.
func (s *Set) Len() int { return len(s.order) }

// Identities returns every identity in the set, in loader-emission order.
func (s *Set) Identities() []Identity {
	out := make([]Identity, len(s.order))
	copy(out, s.order)
	return out
}
