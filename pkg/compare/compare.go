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

// Package compare implements the semantic comparator (C3): it decides
// whether a live object already satisfies a desired object by walking both
// spec trees in parallel, classifying every path it visits as Equal,
// Ignored, Defaulted, or Differing.
package compare

import (
	"fmt"
	"strconv"

	"github.com/pynenc/piceli/pkg/spectree"
)

// Classification is the bucket a single diff path falls into.
type Classification int

const (
	Equal Classification = iota
	Ignored
	Defaulted
	Differing
)

func (c Classification) String() string {
	switch c {
	case Equal:
		return "Equal"
	case Ignored:
		return "Ignored"
	case Defaulted:
		return "Defaulted"
	case Differing:
		return "Differing"
	default:
		return "Unknown"
	}
}

// DiffEntry is a single field-level classification result. Left is the live
// value, Right is the desired value, mirroring the live/desired ordering in
// the data model.
type DiffEntry struct {
	Path           string
	Classification Classification
	Left           *spectree.Node
	Right          *spectree.Node
}

// Result is the full output of comparing a live object against a desired
// one: every visited path plus whether any of them requires a mutation.
type Result struct {
	Entries     []DiffEntry
	NeedsAction bool
}

// Compare walks live and desired in parallel for the given kind and
// classifies every path reached. kind selects the defaulted-path and
// ignored-path extensions from the data-driven rule tables in rules.go.
func Compare(live, desired *spectree.Node, kind string) *Result {
	var entries []DiffEntry
	walk(live, desired, "", kind, &entries)

	needsAction := false
	for _, e := range entries {
		if e.Classification == Differing {
			needsAction = true
			break
		}
	}
	return &Result{Entries: entries, NeedsAction: needsAction}
}

func walk(live, desired *spectree.Node, path, kind string, out *[]DiffEntry) {
	if classifyIgnored(path, kind, desired) {
		*out = append(*out, DiffEntry{Path: path, Classification: Ignored, Left: live, Right: desired})
		return
	}

	_, liveIsSeq := live.AsSeq()
	_, desiredIsSeq := desired.AsSeq()
	if pattern, ok := findSetValuedPattern(path); ok && (liveIsSeq || desiredIsSeq) {
		compareSetValued(live, desired, path, kind, pattern, out)
		return
	}

	liveAbsent := live == nil || live.Kind == spectree.KindNull
	desiredAbsent := desired == nil || desired.Kind == spectree.KindNull

	switch {
	case liveAbsent && desiredAbsent:
		return

	case desiredAbsent:
		// Present live, absent desired: either a known server default, or a
		// real drift the planner needs to see. A live-only map is descended
		// so each of its fields is classified on its own (server-managed
		// fields such as metadata.managedFields come out Ignored).
		if isDefaulted(kind, path, live) {
			*out = append(*out, DiffEntry{Path: path, Classification: Defaulted, Left: live, Right: desired})
			return
		}
		if live.Kind == spectree.KindMap && len(live.Map) > 0 {
			for _, e := range live.Map {
				walk(e.Value, nil, childPath(path, e.Key), kind, out)
			}
			return
		}
		*out = append(*out, DiffEntry{Path: path, Classification: Differing, Left: live, Right: desired})
		return

	case liveAbsent:
		*out = append(*out, DiffEntry{Path: path, Classification: Differing, Left: live, Right: desired})
		return
	}

	if live.Kind == spectree.KindMap && desired.Kind == spectree.KindMap {
		walkMap(live, desired, path, kind, out)
		return
	}

	if live.Kind == spectree.KindSeq && desired.Kind == spectree.KindSeq {
		walkSeq(live, desired, path, kind, out)
		return
	}

	if spectree.Equal(live, desired) {
		*out = append(*out, DiffEntry{Path: path, Classification: Equal, Left: live, Right: desired})
		return
	}
	*out = append(*out, DiffEntry{Path: path, Classification: Differing, Left: live, Right: desired})
}

func walkMap(live, desired *spectree.Node, path, kind string, out *[]DiffEntry) {
	visited := make(map[string]bool, len(desired.Map))
	for _, e := range desired.Map {
		visited[e.Key] = true
		walk(live.Get(e.Key), e.Value, childPath(path, e.Key), kind, out)
	}
	for _, e := range live.Map {
		if visited[e.Key] {
			continue
		}
		walk(e.Value, nil, childPath(path, e.Key), kind, out)
	}
}

func walkSeq(live, desired *spectree.Node, path, kind string, out *[]DiffEntry) {
	if len(live.Seq) != len(desired.Seq) {
		*out = append(*out, DiffEntry{Path: path, Classification: Differing, Left: live, Right: desired})
		return
	}
	for i := range desired.Seq {
		walk(live.Seq[i], desired.Seq[i], fmt.Sprintf("%s[%d]", path, i), kind, out)
	}
}

func childPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// elementKey derives the comparison key of a single sequence element, for
// diagnostic path rendering inside a set-valued sequence.
func elementKey(n *spectree.Node, keyFunc func(*spectree.Node) string, idx int) string {
	k := keyFunc(n)
	if k == "" {
		return strconv.Itoa(idx)
	}
	return k
}
