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

package journal

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/reconcile"
)

func id(name string) object.Identity {
	return object.NewIdentity("", "v1", "ConfigMap", "default", name)
}

func TestReplayWalksReverseApplyOrder(t *testing.T) {
	j := New()
	j.Append(Entry{Identity: id("cm"), Action: reconcile.Create})
	j.Append(Entry{Identity: id("d"), Action: reconcile.Create})

	var order []string
	summary := j.Replay(func(e Entry) error {
		order = append(order, e.Identity.Name)
		return nil
	})

	require.True(t, summary.OK())
	assert.Equal(t, []string{"d", "cm"}, order)
	assert.Equal(t, []object.Identity{id("d"), id("cm")}, summary.Restored)
}

func TestReplayRecordsFailuresWithoutStopping(t *testing.T) {
	j := New()
	j.Append(Entry{Identity: id("a")})
	j.Append(Entry{Identity: id("b")})

	summary := j.Replay(func(e Entry) error {
		if e.Identity.Name == "b" {
			return errors.New("boom")
		}
		return nil
	})

	assert.False(t, summary.OK())
	require.Len(t, summary.Failed, 1)
	assert.Equal(t, id("b"), summary.Failed[0].Identity)
	assert.Equal(t, []object.Identity{id("a")}, summary.Restored)
}

func TestAppendIsConcurrencySafe(t *testing.T) {
	j := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			j.Append(Entry{Identity: id("x")})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, j.Len())
}
