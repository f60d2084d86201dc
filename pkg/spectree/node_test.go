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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathAndGet(t *testing.T) {
	n := Map(
		Entry{Key: "spec", Value: Map(
			Entry{Key: "replicas", Value: Int(3)},
			Entry{Key: "template", Value: Map(
				Entry{Key: "metadata", Value: Map(Entry{Key: "name", Value: String("x")})},
			)},
		)},
	)

	got := Path(n, "spec", "replicas")
	require.NotNil(t, got)
	v, ok := got.AsString()
	assert.False(t, ok)
	assert.Equal(t, int64(3), got.Int)

	assert.Nil(t, Path(n, "spec", "missing", "deep"))
	assert.Equal(t, "", v)
}

func TestEqualOrderSensitiveSeq(t *testing.T) {
	a := Seq(String("a"), String("b"))
	b := Seq(String("b"), String("a"))
	assert.True(t, Equal(a, a))
	assert.False(t, Equal(a, b))
}

func TestEqualMapOrderInsensitive(t *testing.T) {
	a := Map(Entry{Key: "x", Value: Int(1)}, Entry{Key: "y", Value: Int(2)})
	b := Map(Entry{Key: "y", Value: Int(2)}, Entry{Key: "x", Value: Int(1)})
	assert.True(t, Equal(a, b))
}

func TestFromToInterfaceRoundTrip(t *testing.T) {
	in := map[string]interface{}{
		"kind": "Deployment",
		"spec": map[string]interface{}{
			"replicas": 2,
			"tags":     []interface{}{"a", "b"},
		},
	}
	node := FromInterface(in)
	out := ToInterface(node)
	assert.Equal(t, in["kind"], out.(map[string]interface{})["kind"])
}

func TestJSONRoundTripPreservesOrder(t *testing.T) {
	n := Map(
		Entry{Key: "z", Value: Int(1)},
		Entry{Key: "a", Value: Int(2)},
	)
	data, err := n.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":2}`, string(data))

	var decoded Node
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.Equal(t, []string{"z", "a"}, decoded.Keys())
}
