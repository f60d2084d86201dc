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

package executor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pynenc/piceli/pkg/journal"
	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/reconcile"
	"github.com/pynenc/piceli/pkg/spectree"
	"github.com/pynenc/piceli/pkg/transport"
	"github.com/pynenc/piceli/pkg/transport/fake"
)

func configMap(name string) *object.CanonicalObject {
	spec := spectree.Map(spectree.Entry{Key: "data", Value: spectree.Map(
		spectree.Entry{Key: "k", Value: spectree.String("v")},
	)})
	return object.New(object.NewIdentity("", "v1", "ConfigMap", "default", name), nil, nil, spec, "test")
}

func deployment(name string) *object.CanonicalObject {
	spec := spectree.Map(spectree.Entry{Key: "spec", Value: spectree.Map(
		spectree.Entry{Key: "replicas", Value: spectree.Int(1)},
	)})
	return object.New(object.NewIdentity("apps", "v1", "Deployment", "default", name), nil, nil, spec, "test")
}

// TestRollbackOnReadinessFailure mirrors the rollback scenario: a ConfigMap
// at level 0 and a Deployment at level 1 are both newly created; the
// Deployment never reports ready, so its level fails and the journal must
// unwind both creations in reverse order.
func TestRollbackOnReadinessFailure(t *testing.T) {
	cm := configMap("cm")
	d := deployment("d")

	ft := fake.New()
	j := journal.New()
	ex := New(ft, j, Config{
		MaxAttempts:      1,
		ReadinessTimeout: 30 * time.Millisecond,
		PollInterval:     5 * time.Millisecond,
	})

	actions := map[object.Identity]*reconcile.Action{
		cm.Identity(): {Kind: reconcile.Create, Identity: cm.Identity(), Desired: cm},
		d.Identity():  {Kind: reconcile.Create, Identity: d.Identity(), Desired: d},
	}
	levels := [][]object.Identity{{cm.Identity()}, {d.Identity()}}

	result := ex.Run(context.Background(), levels, actions)
	require.False(t, result.OK())
	var timeoutErr *ReadinessTimeoutError
	require.ErrorAs(t, result.Failed[d.Identity()], &timeoutErr)

	_, err := ft.Get(context.Background(), cm.Identity())
	require.NoError(t, err)
	_, err = ft.Get(context.Background(), d.Identity())
	require.NoError(t, err)

	var undone []object.Identity
	summary := j.Replay(func(e journal.Entry) error {
		undone = append(undone, e.Identity)
		if e.PreImage == nil {
			return ft.Delete(context.Background(), e.Identity)
		}
		return ft.Replace(context.Background(), e.PreImage)
	})
	require.True(t, summary.OK())
	assert.Equal(t, []object.Identity{d.Identity(), cm.Identity()}, undone)

	_, err = ft.Get(context.Background(), cm.Identity())
	assert.True(t, transport.IsNotFound(err))
	_, err = ft.Get(context.Background(), d.Identity())
	assert.True(t, transport.IsNotFound(err))
}

func TestRunStopsAfterFailingLevel(t *testing.T) {
	a := configMap("a")
	b := configMap("b")

	ft := fake.New()
	j := journal.New()
	ex := New(ft, j, Config{MaxAttempts: 1, ReadinessTimeout: 10 * time.Millisecond, PollInterval: 2 * time.Millisecond})

	ft.FailNext[a.Identity()] = assert.AnError

	actions := map[object.Identity]*reconcile.Action{
		a.Identity(): {Kind: reconcile.Create, Identity: a.Identity(), Desired: a},
		b.Identity(): {Kind: reconcile.Create, Identity: b.Identity(), Desired: b},
	}
	levels := [][]object.Identity{{a.Identity()}, {b.Identity()}}

	result := ex.Run(context.Background(), levels, actions)
	require.False(t, result.OK())
	assert.Contains(t, result.Failed, a.Identity())

	_, err := ft.Get(context.Background(), b.Identity())
	assert.True(t, transport.IsNotFound(err), "level 2 must not start once level 1 fails")
}
