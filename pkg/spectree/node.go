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

// Package spectree implements the heterogeneous, order-preserving tree used
// to hold a CanonicalObject's spec: a tagged sum of scalars, ordered
// sequences, and ordered mappings. Comparator and planner logic walks this
// sum directly; kind-specific shortcuts decode typed views from it on
// demand without ever discarding the underlying tree.
package spectree

import "fmt"

// Kind identifies which arm of the tagged sum a Node occupies.
type Kind int

const (
	// KindNull is an explicit null/absent scalar.
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSeq
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSeq:
		return "seq"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entry is a single key/value pair inside a Map node. Entries are kept in a
// slice, not a native Go map, so insertion order chosen by the loader
// survives round trips and diagnostic output.
type Entry struct {
	Key   string
	Value *Node
}

// Node is one element of the spec tree: exactly one of the Kind-tagged
// fields below is meaningful, selected by Kind.
type Node struct {
	Kind Kind

	Bool   bool
	Int    int64
	Float  float64
	String string

	Seq []*Node
	Map []Entry
}

// Null returns the null scalar node.
func Null() *Node { return &Node{Kind: KindNull} }

// Bool returns a bool scalar node.
func Bool(v bool) *Node { return &Node{Kind: KindBool, Bool: v} }

// Int returns an integer scalar node.
func Int(v int64) *Node { return &Node{Kind: KindInt, Int: v} }

// Float returns a float scalar node.
func Float(v float64) *Node { return &Node{Kind: KindFloat, Float: v} }

// String returns a string scalar node.
func String(v string) *Node { return &Node{Kind: KindString, String: v} }

// Seq returns a sequence node wrapping the given elements in order.
func Seq(elems ...*Node) *Node { return &Node{Kind: KindSeq, Seq: elems} }

// Map returns a mapping node with entries in the given order. Duplicate
// keys are permitted by construction (callers should not produce them);
// lookups return the first match.
func Map(entries ...Entry) *Node { return &Node{Kind: KindMap, Map: entries} }

// IsScalar reports whether n is one of the scalar kinds.
func (n *Node) IsScalar() bool {
	if n == nil {
		return true
	}
	switch n.Kind {
	case KindNull, KindBool, KindInt, KindFloat, KindString:
		return true
	default:
		return false
	}
}

// Get returns the value for key in a Map node, or nil if n is not a Map or
// the key is absent.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Kind != KindMap {
		return nil
	}
	for _, e := range n.Map {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Has reports whether key is present in a Map node.
func (n *Node) Has(key string) bool {
	return n.Get(key) != nil
}

// Keys returns the ordered keys of a Map node, or nil otherwise.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != KindMap {
		return nil
	}
	keys := make([]string, len(n.Map))
	for i, e := range n.Map {
		keys[i] = e.Key
	}
	return keys
}

// Path resolves a sequence of map keys (e.g. "spec", "template", "spec")
// from n, returning nil if any segment is absent. Segments are plain keys:
// they are not split on dots and sequence indices are not supported.
func Path(n *Node, path ...string) *Node {
	cur := n
	for _, seg := range path {
		if cur == nil {
			return nil
		}
		cur = cur.Get(seg)
	}
	return cur
}

// AsString returns the node's string value and whether it is a string node.
func (n *Node) AsString() (string, bool) {
	if n == nil || n.Kind != KindString {
		return "", false
	}
	return n.String, true
}

// AsSeq returns the node's elements and whether it is a sequence node.
func (n *Node) AsSeq() ([]*Node, bool) {
	if n == nil || n.Kind != KindSeq {
		return nil, false
	}
	return n.Seq, true
}

// Equal reports structural equality between two nodes. Sequences compare
// element by element in order; Map entries compare by key regardless of
// entry order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return isAbsent(a) && isAbsent(b)
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindInt:
		return a.Int == b.Int
	case KindFloat:
		return a.Float == b.Float
	case KindString:
		return a.String == b.String
	case KindSeq:
		if len(a.Seq) != len(b.Seq) {
			return false
		}
		for i := range a.Seq {
			if !Equal(a.Seq[i], b.Seq[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.Map) != len(b.Map) {
			return false
		}
		for _, e := range a.Map {
			if !Equal(e.Value, b.Get(e.Key)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isAbsent(n *Node) bool {
	return n == nil || n.Kind == KindNull
}
