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

	"github.com/pynenc/piceli/pkg/config"
	"github.com/pynenc/piceli/pkg/loader"
	"github.com/pynenc/piceli/pkg/object"
)

func NewDeployCommand(cli *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [subcommand]",
		Short: "Plan, preview, or execute a deployment",
	}
	cmd.AddCommand(
		newDeployPlanCommand(cli),
		newDeployDetailCommand(cli),
		newDeployRunCommand(cli),
	)
	return cmd
}

// baseConfig builds the Config shared by every deploy subcommand from the
// persistent global flags.
func baseConfig() config.Config {
	cfg := config.Default()
	cfg.Namespace = opts.namespace
	return cfg
}

func loadObjects() ([]*object.CanonicalObject, error) {
	objects, err := loader.Load(opts.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load objects: %w", err)
	}
	return objects, nil
}
