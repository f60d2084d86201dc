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
	"time"

	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/pynenc/piceli/pkg/transport"
)

// backoffFor builds the exponential backoff schedule for a submit retry
// loop, capped at maxAttempts steps.
func backoffFor(maxAttempts int) wait.Backoff {
	return wait.Backoff{
		Duration: 200 * time.Millisecond,
		Factor:   2.0,
		Jitter:   0.1,
		Steps:    maxAttempts,
	}
}

// withRetry runs op repeatedly under backoff as long as it fails with a
// transport.TransientError, returning the last error once the schedule is
// exhausted or op fails with anything else.
func withRetry(ctx context.Context, backoff wait.Backoff, op func() error) error {
	var lastErr error
	err := wait.ExponentialBackoffWithContext(ctx, backoff, func(ctx context.Context) (bool, error) {
		lastErr = op()
		if lastErr == nil {
			return true, nil
		}
		if transport.IsTransient(lastErr) {
			return false, nil
		}
		return false, lastErr
	})
	if err != nil {
		if wait.Interrupted(err) {
			return lastErr
		}
		return err
	}
	return nil
}
