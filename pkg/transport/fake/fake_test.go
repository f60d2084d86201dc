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

package fake

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/spectree"
	"github.com/pynenc/piceli/pkg/transport"
)

func cm(name string, data map[string]string) *object.CanonicalObject {
	entries := make([]spectree.Entry, 0, len(data))
	for k, v := range data {
		entries = append(entries, spectree.Entry{Key: k, Value: spectree.String(v)})
	}
	spec := spectree.Map(spectree.Entry{Key: "data", Value: spectree.Map(entries...)})
	return object.New(object.NewIdentity("", "v1", "ConfigMap", "default", name), nil, nil, spec, "test")
}

func TestGetNotFound(t *testing.T) {
	ft := New()
	_, err := ft.Get(context.Background(), object.NewIdentity("", "v1", "ConfigMap", "default", "missing"))
	require.Error(t, err)
	assert.True(t, transport.IsNotFound(err))
}

func TestCreateThenGet(t *testing.T) {
	ft := New()
	obj := cm("a", map[string]string{"k": "v"})
	require.NoError(t, ft.Create(context.Background(), obj))

	got, err := ft.Get(context.Background(), obj.Identity())
	require.NoError(t, err)
	assert.Equal(t, "v", spectree.Path(got.Spec(), "data", "k").String)
}

func TestPatchMergesIntoExisting(t *testing.T) {
	ft := New()
	obj := cm("a", map[string]string{"k": "v1", "other": "stays"})
	require.NoError(t, ft.Create(context.Background(), obj))

	patch := spectree.Map(spectree.Entry{Key: "data", Value: spectree.Map(
		spectree.Entry{Key: "k", Value: spectree.String("v2")},
	)})
	require.NoError(t, ft.Patch(context.Background(), obj.Identity(), patch))

	got, err := ft.Get(context.Background(), obj.Identity())
	require.NoError(t, err)
	assert.Equal(t, "v2", spectree.Path(got.Spec(), "data", "k").String)
	assert.Equal(t, "stays", spectree.Path(got.Spec(), "data", "other").String)
}

func TestFailNextConsumedOnce(t *testing.T) {
	ft := New()
	obj := cm("a", map[string]string{"k": "v"})
	id := obj.Identity()
	ft.FailNext[id] = errors.New("boom")

	err := ft.Create(context.Background(), obj)
	require.Error(t, err)

	require.NoError(t, ft.Create(context.Background(), obj))
}

func TestDeleteRemovesObject(t *testing.T) {
	ft := New()
	obj := cm("a", map[string]string{"k": "v"})
	require.NoError(t, ft.Create(context.Background(), obj))
	require.NoError(t, ft.Delete(context.Background(), obj.Identity()))

	_, err := ft.Get(context.Background(), obj.Identity())
	assert.True(t, transport.IsNotFound(err))
}
