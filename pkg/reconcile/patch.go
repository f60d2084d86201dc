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
	"strings"

	"github.com/pynenc/piceli/pkg/spectree"
)

// buildMergePatch assembles a spec tree holding only the fields named by
// paths, each resolved from desired and nested back under its original
// structure, so the transport can send it as a JSON merge patch body.
func buildMergePatch(desired *spectree.Node, paths []string) *spectree.Node {
	root := spectree.Map()
	for _, p := range paths {
		segments := strings.Split(p, ".")
		value := spectree.Path(desired, segments...)
		root = setPath(root, segments, value)
	}
	return root
}

func setPath(root *spectree.Node, segments []string, value *spectree.Node) *spectree.Node {
	key := segments[0]
	rest := segments[1:]
	if len(rest) == 0 {
		return upsertEntry(root, key, value)
	}
	child := root.Get(key)
	if child == nil || child.Kind != spectree.KindMap {
		child = spectree.Map()
	}
	return upsertEntry(root, key, setPath(child, rest, value))
}

func upsertEntry(root *spectree.Node, key string, value *spectree.Node) *spectree.Node {
	entries := make([]spectree.Entry, 0, len(root.Map)+1)
	replaced := false
	for _, e := range root.Map {
		if e.Key == key {
			entries = append(entries, spectree.Entry{Key: key, Value: value})
			replaced = true
			continue
		}
		entries = append(entries, e)
	}
	if !replaced {
		entries = append(entries, spectree.Entry{Key: key, Value: value})
	}
	return spectree.Map(entries...)
}
