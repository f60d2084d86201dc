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

package command

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/pynenc/piceli/cmd/piceli/internal/view"
	"github.com/pynenc/piceli/pkg/engine"
	"github.com/pynenc/piceli/pkg/object"
)

func newDeployRunCommand(cli *CLI) *cobra.Command {
	var createNamespace bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the plan against the cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeployRun(cmd.Context(), cli, createNamespace)
		},
	}
	cmd.Flags().BoolVarP(&createNamespace, "create-namespace", "c", false, "Create the target namespace if missing before level 0")
	return cmd
}

// runDeployRun maps the engine's outcome to the three non-zero exit codes
// §6 defines: 1 for input/validation errors raised before any cluster
// contact, 2 for an apply failure whose rollback completed, and 3 for an
// apply failure whose rollback itself left entries unrestored.
func runDeployRun(ctx context.Context, cli *CLI, createNamespace bool) error {
	objects, err := loadObjects()
	if err != nil {
		return newExitCodeError(1, err.Error())
	}

	t, err := newClusterTransport(opts.kubeconfig)
	if err != nil {
		return newExitCodeError(1, err.Error())
	}

	cfg := baseConfig()
	cfg.CreateNamespace = createNamespace

	eng := engine.New(t, cfg)
	result, err := eng.Deploy(ctx, objects)

	rendered := renderDeployResult(cli, result)
	if err == nil {
		return nil
	}

	var deployErr *engine.DeployFailedError
	if !errors.As(err, &deployErr) {
		return newExitCodeError(1, err.Error())
	}
	if rendered.RollbackOK() {
		return newExitCodeError(2, "")
	}
	return newExitCodeError(3, "")
}

func renderDeployResult(cli *CLI, result *engine.DeployResult) view.DeployResult {
	out := view.DeployResult{Failed: map[object.Identity]string{}, RollbackFail: map[object.Identity]string{}}
	if result == nil {
		cli.RenderDeploy(out)
		return out
	}

	for i := 0; i < result.Detail.Layered.Len(); i++ {
		for _, id := range result.Detail.Layered.Level(i) {
			if result.Exec != nil {
				if execErr, failed := result.Exec.Failed[id]; failed {
					out.Failed[id] = execErr.Error()
					continue
				}
			}
			out.Applied = append(out.Applied, id)
		}
	}

	if result.Rollback != nil {
		out.RolledBack = result.Rollback.Restored
		for _, step := range result.Rollback.Failed {
			out.RollbackFail[step.Identity] = step.Error()
		}
	}

	cli.RenderDeploy(out)
	return out
}
