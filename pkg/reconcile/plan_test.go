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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pynenc/piceli/pkg/compare"
	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/spectree"
)

func jobSpec(image string) *spectree.Node {
	return spectree.Map(
		spectree.Entry{Key: "spec", Value: spectree.Map(
			spectree.Entry{Key: "template", Value: spectree.Map(
				spectree.Entry{Key: "spec", Value: spectree.Map(
					spectree.Entry{Key: "containers", Value: spectree.Seq(
						spectree.Map(
							spectree.Entry{Key: "name", Value: spectree.String("worker")},
							spectree.Entry{Key: "image", Value: spectree.String(image)},
						),
					)},
				)},
			)},
		)},
	)
}

func obj(kind string, spec *spectree.Node) *object.CanonicalObject {
	return object.New(object.NewIdentity("batch", "v1", kind, "default", "job"), nil, nil, spec, "test")
}

func TestPlanJobImageChangeForcesReplace(t *testing.T) {
	live := obj("Job", jobSpec("app:v1"))
	desired := obj("Job", jobSpec("app:v2"))

	cmp := compare.Compare(live.Spec(), desired.Spec(), "Job")
	require.True(t, cmp.NeedsAction)

	action := Plan(live, desired, cmp)
	assert.Equal(t, Replace, action.Kind)
	assert.Equal(t, desired, action.Desired)
	assert.Nil(t, action.MergePatch)
}

func TestPlanCreateWhenLiveAbsent(t *testing.T) {
	desired := obj("Job", jobSpec("app:v1"))
	action := Plan(nil, desired, nil)
	assert.Equal(t, Create, action.Kind)
	assert.Equal(t, desired, action.Desired)
}

func TestPlanNoActionWhenEqual(t *testing.T) {
	live := obj("ConfigMap", spectree.Map(spectree.Entry{Key: "data", Value: spectree.Map(spectree.Entry{Key: "k", Value: spectree.String("v")})}))
	desired := obj("ConfigMap", spectree.Map(spectree.Entry{Key: "data", Value: spectree.Map(spectree.Entry{Key: "k", Value: spectree.String("v")})}))

	cmp := compare.Compare(live.Spec(), desired.Spec(), "ConfigMap")
	require.False(t, cmp.NeedsAction)

	action := Plan(live, desired, cmp)
	assert.Equal(t, NoAction, action.Kind)
}

func TestPlanPatchForMutableField(t *testing.T) {
	live := obj("ConfigMap", spectree.Map(spectree.Entry{Key: "data", Value: spectree.Map(spectree.Entry{Key: "k", Value: spectree.String("old")})}))
	desired := obj("ConfigMap", spectree.Map(spectree.Entry{Key: "data", Value: spectree.Map(spectree.Entry{Key: "k", Value: spectree.String("new")})}))

	cmp := compare.Compare(live.Spec(), desired.Spec(), "ConfigMap")
	require.True(t, cmp.NeedsAction)

	action := Plan(live, desired, cmp)
	require.Equal(t, Patch, action.Kind)
	require.NotNil(t, action.MergePatch)
	assert.Equal(t, "new", spectree.Path(action.MergePatch, "data", "k").String)
}
