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

package compare

import (
	"regexp"
	"strings"

	"github.com/pynenc/piceli/pkg/spectree"
)

// setValuedPattern names a sequence path that must compare as a multiset,
// keyed by the kind-specific identity keyFunc extracts, rather than
// positionally.
type setValuedPattern struct {
	Suffix  string
	KeyFunc func(*spectree.Node) string
}

var setValuedPatterns = []setValuedPattern{
	{Suffix: "metadata.finalizers", KeyFunc: scalarKey},
	{Suffix: "spec.template.spec.containers[*].env", KeyFunc: nameKey},
	{Suffix: "subjects", KeyFunc: nameKindKey},
	{Suffix: "rules", KeyFunc: canonicalKey},
}

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// findSetValuedPattern reports whether path (exactly, or as a suffix after
// normalizing array indices to "[*]") names a known set-valued sequence.
func findSetValuedPattern(path string) (setValuedPattern, bool) {
	normalized := indexPattern.ReplaceAllString(path, "[*]")
	for _, p := range setValuedPatterns {
		if normalized == p.Suffix || strings.HasSuffix(normalized, "."+p.Suffix) {
			return p, true
		}
	}
	return setValuedPattern{}, false
}

// compareSetValued compares live and desired as multisets: elements are
// matched by identity key rather than position, then recursively diffed so
// nested Defaulted/Ignored classification still applies within a matched
// element.
func compareSetValued(live, desired *spectree.Node, path, kind string, pattern setValuedPattern, out *[]DiffEntry) {
	liveSeq, liveIsSeq := live.AsSeq()
	desiredSeq, desiredIsSeq := desired.AsSeq()

	if !liveIsSeq && !desiredIsSeq {
		// Neither side is a populated sequence; fall through to the
		// ordinary absence handling so defaulted/ignored rules still apply.
		walk(live, desired, path, kind, out)
		return
	}

	liveByKey := make(map[string]*spectree.Node, len(liveSeq))
	for _, e := range liveSeq {
		liveByKey[pattern.KeyFunc(e)] = e
	}
	desiredByKey := make(map[string]*spectree.Node, len(desiredSeq))
	for _, e := range desiredSeq {
		desiredByKey[pattern.KeyFunc(e)] = e
	}

	for _, e := range desiredSeq {
		k := pattern.KeyFunc(e)
		walk(liveByKey[k], e, path+"[key="+k+"]", kind, out)
	}
	for _, e := range liveSeq {
		k := pattern.KeyFunc(e)
		if _, ok := desiredByKey[k]; ok {
			continue
		}
		walk(e, nil, path+"[key="+k+"]", kind, out)
	}
}

func scalarKey(n *spectree.Node) string {
	if s, ok := n.AsString(); ok {
		return s
	}
	return canonicalKey(n)
}

func nameKey(n *spectree.Node) string {
	if name, ok := n.Get("name").AsString(); ok {
		return name
	}
	return canonicalKey(n)
}

func nameKindKey(n *spectree.Node) string {
	kind, _ := n.Get("kind").AsString()
	name, _ := n.Get("name").AsString()
	if kind == "" && name == "" {
		return canonicalKey(n)
	}
	return kind + "/" + name
}

func canonicalKey(n *spectree.Node) string {
	data, err := n.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}
