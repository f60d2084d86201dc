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

package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pynenc/piceli/pkg/config"
	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/reconcile"
	"github.com/pynenc/piceli/pkg/spectree"
	"github.com/pynenc/piceli/pkg/transport/fake"
)

func demoConfigMap(name, value string) *object.CanonicalObject {
	spec := spectree.Map(spectree.Entry{Key: "data", Value: spectree.Map(
		spectree.Entry{Key: "k", Value: spectree.String(value)},
	)})
	return object.New(object.NewIdentity("", "v1", "ConfigMap", "default", name), nil, nil, spec, "test")
}

func TestDeployThenRedeployIsIdempotent(t *testing.T) {
	ft := fake.New()
	eng := New(ft, config.Default())
	objs := []*object.CanonicalObject{demoConfigMap("cm", "v1")}

	first, err := eng.Deploy(context.Background(), objs)
	require.NoError(t, err)
	require.True(t, first.Exec.OK())
	require.Len(t, first.Detail.Details, 1)
	assert.Equal(t, reconcile.Create, first.Detail.Details[0].Action.Kind)

	second, err := eng.Deploy(context.Background(), objs)
	require.NoError(t, err)
	require.True(t, second.Exec.OK())
	require.Len(t, second.Detail.Details, 1)
	assert.Equal(t, reconcile.NoAction, second.Detail.Details[0].Action.Kind)
}

func TestDetailThenDeployAgree(t *testing.T) {
	ft := fake.New()
	eng := New(ft, config.Default())
	objs := []*object.CanonicalObject{demoConfigMap("cm", "v1")}

	preview, err := eng.Detail(context.Background(), objs)
	require.NoError(t, err)
	require.Len(t, preview.Details, 1)
	assert.Equal(t, reconcile.Create, preview.Details[0].Action.Kind)

	result, err := eng.Deploy(context.Background(), objs)
	require.NoError(t, err)
	require.Len(t, result.Detail.Details, 1)
	assert.Equal(t, preview.Details[0].Identity, result.Detail.Details[0].Identity)
	assert.Equal(t, preview.Details[0].Action.Kind, result.Detail.Details[0].Action.Kind)
}

func TestPlanAppliesNamespaceOverride(t *testing.T) {
	ft := fake.New()
	cfg := config.Default()
	cfg.Namespace = "override"
	eng := New(ft, cfg)

	obj := object.New(object.NewIdentity("", "v1", "ConfigMap", "", "cm"), nil, nil, spectree.Map(), "test")
	plan, err := eng.Plan([]*object.CanonicalObject{obj})
	require.NoError(t, err)
	require.Equal(t, 1, plan.Layered.Len())
	assert.Equal(t, "override", plan.Layered.Level(0)[0].Namespace)
}
