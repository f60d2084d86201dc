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
	"errors"

	"github.com/spf13/cobra"

	"github.com/pynenc/piceli/cmd/piceli/internal/view"
	"github.com/pynenc/piceli/pkg/depgraph"
	"github.com/pynenc/piceli/pkg/engine"
	"github.com/pynenc/piceli/pkg/object"
)

func newDeployPlanCommand(cli *CLI) *cobra.Command {
	var validate bool
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build the layered dependency plan; print the resulting levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeployPlan(cli, validate)
		},
	}
	cmd.Flags().BoolVarP(&validate, "validate", "v", false, "Run full validation (cycles, dangling references) before planning")
	return cmd
}

func runDeployPlan(cli *CLI, validate bool) error {
	objects, err := loadObjects()
	if err != nil {
		return newExitCodeError(1, err.Error())
	}

	cfg := baseConfig()
	cfg.Validate = validate

	// Plan never contacts the cluster, so a nil transport is safe here:
	// pkg/engine.Engine.Plan only calls pkg/depgraph.Plan.
	eng := engine.New(nil, cfg)
	result, err := eng.Plan(objects)
	if err != nil {
		var cycleErr *depgraph.CycleError
		var danglingErr *depgraph.DanglingReferenceError
		if errors.As(err, &cycleErr) || errors.As(err, &danglingErr) {
			cli.RenderPlan(view.PlanResult{ValidationErr: err})
			return newExitCodeError(1, "")
		}
		return newExitCodeError(1, err.Error())
	}

	levels := make([][]object.Identity, result.Layered.Len())
	for i := range levels {
		levels[i] = result.Layered.Level(i)
	}
	cli.RenderPlan(view.PlanResult{Levels: levels})
	return nil
}
