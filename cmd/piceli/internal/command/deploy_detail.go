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

	"github.com/spf13/cobra"

	"github.com/pynenc/piceli/cmd/piceli/internal/view"
	"github.com/pynenc/piceli/pkg/compare"
	"github.com/pynenc/piceli/pkg/engine"
	"github.com/pynenc/piceli/pkg/reconcile"
)

func newDeployDetailCommand(cli *CLI) *cobra.Command {
	var hideNoAction bool
	cmd := &cobra.Command{
		Use:   "detail",
		Short: "Run plan plus the per-object comparator; print desired vs live and the diff classification",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeployDetail(cmd.Context(), cli, hideNoAction)
		},
	}
	cmd.Flags().BoolVarP(&hideNoAction, "hide-no-action", "n", false, "Suppress NO_ACTION rows")
	cmd.Flags().BoolP("human", "h", false, "Deprecated alias, detail is human-readable by default")
	_ = cmd.Flags().MarkHidden("human")
	return cmd
}

func runDeployDetail(ctx context.Context, cli *CLI, hideNoAction bool) error {
	objects, err := loadObjects()
	if err != nil {
		return newExitCodeError(1, err.Error())
	}

	t, err := newClusterTransport(opts.kubeconfig)
	if err != nil {
		return newExitCodeError(1, err.Error())
	}

	eng := engine.New(t, baseConfig())
	detail, err := eng.Detail(ctx, objects)
	if err != nil {
		return newExitCodeError(1, err.Error())
	}

	result := view.DetailResult{}
	next := 0
	for i := 0; i < detail.Layered.Len(); i++ {
		for range detail.Layered.Level(i) {
			d := detail.Details[next]
			next++
			if hideNoAction && d.Action.Kind == reconcile.NoAction {
				continue
			}
			diffs := 0
			if d.Compare != nil {
				for _, e := range d.Compare.Entries {
					if e.Classification == compare.Differing {
						diffs++
					}
				}
			}
			result.Rows = append(result.Rows, view.DetailRow{
				Level:    i,
				Identity: d.Identity,
				Action:   d.Action.Kind,
				Diffs:    diffs,
			})
		}
	}
	cli.RenderDetail(result)
	return nil
}
