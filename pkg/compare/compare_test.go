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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pynenc/piceli/pkg/spectree"
)

func TestStorageClassNoAction(t *testing.T) {
	desired := spectree.Map(
		spectree.Entry{Key: "provisioner", Value: spectree.String("k8s.io/minikube-hostpath")},
		spectree.Entry{Key: "allowVolumeExpansion", Value: spectree.Bool(true)},
	)
	live := spectree.Map(
		spectree.Entry{Key: "provisioner", Value: spectree.String("k8s.io/minikube-hostpath")},
		spectree.Entry{Key: "allowVolumeExpansion", Value: spectree.Bool(true)},
		spectree.Entry{Key: "reclaimPolicy", Value: spectree.String("Delete")},
		spectree.Entry{Key: "volumeBindingMode", Value: spectree.String("Immediate")},
		spectree.Entry{Key: "metadata", Value: spectree.Map(
			spectree.Entry{Key: "managedFields", Value: spectree.Seq(spectree.String("x"))},
			spectree.Entry{Key: "resourceVersion", Value: spectree.String("123")},
		)},
	)

	result := Compare(live, desired, "StorageClass")
	require.False(t, result.NeedsAction)

	byPath := map[string]Classification{}
	for _, e := range result.Entries {
		byPath[e.Path] = e.Classification
	}
	assert.Equal(t, Defaulted, byPath["reclaimPolicy"])
	assert.Equal(t, Defaulted, byPath["volumeBindingMode"])
	assert.Equal(t, Ignored, byPath["metadata.managedFields"])
	assert.Equal(t, Ignored, byPath["metadata.resourceVersion"])
}

func TestReflexivity(t *testing.T) {
	obj := spectree.Map(
		spectree.Entry{Key: "spec", Value: spectree.Map(
			spectree.Entry{Key: "replicas", Value: spectree.Int(3)},
		)},
	)
	result := Compare(obj, obj, "Deployment")
	assert.False(t, result.NeedsAction)
}

func TestDifferingField(t *testing.T) {
	desired := spectree.Map(spectree.Entry{Key: "spec", Value: spectree.Map(
		spectree.Entry{Key: "replicas", Value: spectree.Int(3)},
	)})
	live := spectree.Map(spectree.Entry{Key: "spec", Value: spectree.Map(
		spectree.Entry{Key: "replicas", Value: spectree.Int(2)},
	)})

	result := Compare(live, desired, "Deployment")
	require.True(t, result.NeedsAction)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, Differing, result.Entries[0].Classification)
	assert.Equal(t, "spec.replicas", result.Entries[0].Path)
}

func TestSetValuedFinalizersIgnoresOrder(t *testing.T) {
	desired := spectree.Map(spectree.Entry{Key: "metadata", Value: spectree.Map(
		spectree.Entry{Key: "finalizers", Value: spectree.Seq(spectree.String("a"), spectree.String("b"))},
	)})
	live := spectree.Map(spectree.Entry{Key: "metadata", Value: spectree.Map(
		spectree.Entry{Key: "finalizers", Value: spectree.Seq(spectree.String("b"), spectree.String("a"))},
	)})

	result := Compare(live, desired, "Deployment")
	assert.False(t, result.NeedsAction)
}

func TestSetValuedEnvMatchedByName(t *testing.T) {
	path := []string{"spec", "template", "spec", "containers"}
	makeContainers := func(envs ...*spectree.Node) *spectree.Node {
		return spectree.Map(entries(path, spectree.Seq(spectree.Map(
			spectree.Entry{Key: "name", Value: spectree.String("app")},
			spectree.Entry{Key: "env", Value: spectree.Seq(envs...)},
		)))...)
	}
	envVar := func(name, value string) *spectree.Node {
		return spectree.Map(
			spectree.Entry{Key: "name", Value: spectree.String(name)},
			spectree.Entry{Key: "value", Value: spectree.String(value)},
		)
	}

	desired := makeContainers(envVar("A", "1"), envVar("B", "2"))
	live := makeContainers(envVar("B", "2"), envVar("A", "1"))

	result := Compare(live, desired, "Deployment")
	assert.False(t, result.NeedsAction)
}

// entries builds nested single-key maps along path, terminating in leaf.
func entries(path []string, leaf *spectree.Node) []spectree.Entry {
	if len(path) == 0 {
		return nil
	}
	if len(path) == 1 {
		return []spectree.Entry{{Key: path[0], Value: leaf}}
	}
	return []spectree.Entry{{Key: path[0], Value: spectree.Map(entries(path[1:], leaf)...)}}
}
