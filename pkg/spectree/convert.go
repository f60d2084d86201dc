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

package spectree

import (
	"fmt"
	"sort"
)

// FromInterface converts a generic decoded value (as produced by
// encoding/json or sigs.k8s.io/yaml, or an unstructured.Unstructured's
// Object map) into a Node. map[string]interface{} keys are sorted, since Go
// map iteration order is not stable and the source representation has
// already lost the original document order by the time it reaches this
// layer; callers that must preserve loader-chosen order should build the
// tree directly with Map(...) instead of going through this helper.
func FromInterface(v interface{}) *Node {
	switch val := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(val)
	case int:
		return Int(int64(val))
	case int32:
		return Int(int64(val))
	case int64:
		return Int(val)
	case float32:
		return Float(float64(val))
	case float64:
		return Float(val)
	case string:
		return String(val)
	case []interface{}:
		elems := make([]*Node, len(val))
		for i, e := range val {
			elems[i] = FromInterface(e)
		}
		return Seq(elems...)
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]Entry, 0, len(val))
		for _, k := range keys {
			entries = append(entries, Entry{Key: k, Value: FromInterface(val[k])})
		}
		return Map(entries...)
	default:
		return String(fmt.Sprintf("%v", val))
	}
}

// ToInterface converts a Node back into the generic representation used by
// unstructured.Unstructured and JSON encoding.
func ToInterface(n *Node) interface{} {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindNull:
		return nil
	case KindBool:
		return n.Bool
	case KindInt:
		return n.Int
	case KindFloat:
		return n.Float
	case KindString:
		return n.String
	case KindSeq:
		out := make([]interface{}, len(n.Seq))
		for i, e := range n.Seq {
			out[i] = ToInterface(e)
		}
		return out
	case KindMap:
		out := make(map[string]interface{}, len(n.Map))
		for _, e := range n.Map {
			out[e.Key] = ToInterface(e.Value)
		}
		return out
	default:
		return nil
	}
}
