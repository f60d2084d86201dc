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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pynenc/piceli/cmd/piceli/internal/view"
	"github.com/pynenc/piceli/pkg/loader"
)

func NewModelCommand(cli *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model [subcommand]",
		Short: "Inspect the loaded object set",
	}
	cmd.AddCommand(newModelListCommand(cli))
	return cmd
}

func newModelListCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Emit identity and origin for every loaded object; no cluster interaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelList(cli)
		},
	}
}

func runModelList(cli *CLI) error {
	objects, err := loader.Load(opts.path)
	if err != nil {
		return newExitCodeError(1, fmt.Sprintf("failed to load objects: %v", err))
	}

	result := view.ModelListResult{Objects: make([]view.ModelObject, len(objects))}
	for i, o := range objects {
		result.Objects[i] = view.ModelObject{Identity: o.Identity(), Origin: o.Origin()}
	}
	cli.RenderModelList(result)
	return nil
}
