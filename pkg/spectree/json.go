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
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON renders the node preserving Map key order, so its output
// (for example the comparator's set-valued element keys) is stable across
// runs regardless of the Go runtime's map iteration order.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	switch n.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool, KindInt, KindFloat, KindString:
		return json.Marshal(ToInterface(n))
	case KindSeq:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range n.Seq {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindMap:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, entry := range n.Map {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(entry.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			v, err := entry.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(v)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("spectree: unknown node kind %v", n.Kind)
	}
}

// UnmarshalJSON populates the node from JSON, preserving the document's own
// key order (encoding/json does not expose that ordering for
// map[string]interface{}, so this uses json.Decoder token-by-token to
// recover it).
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	node, err := decodeValue(dec)
	if err != nil {
		return err
	}
	*n = *node
	return nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch v := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("spectree: invalid number %q: %w", v, err)
		}
		return Float(f), nil
	case string:
		return String(v), nil
	case json.Delim:
		switch v {
		case '[':
			var elems []*Node
			for dec.More() {
				e, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				elems = append(elems, e)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return Seq(elems...), nil
		case '{':
			var entries []Entry
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("spectree: expected string object key, got %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				entries = append(entries, Entry{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return Map(entries...), nil
		default:
			return nil, fmt.Errorf("spectree: unexpected delimiter %v", v)
		}
	default:
		return nil, fmt.Errorf("spectree: unexpected token %v (%T)", tok, tok)
	}
}
