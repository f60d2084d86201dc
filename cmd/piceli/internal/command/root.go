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
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pynenc/piceli/cmd/piceli/internal/view"
)

// globalOptions holds every flag shared across `model` and `deploy`
// subcommands: where to load objects from and which cluster to target.
type globalOptions struct {
	path       string
	namespace  string
	kubeconfig string
}

var (
	outputFlag string
	debugFlag  bool
	opts       globalOptions
)

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "piceli",
		Short: color.RGB(50, 108, 229).Sprintf("piceli [global options] <subcommand> [args]") + "\n" +
			"A declarative deployment engine for Kubernetes manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				_ = cmd.Help()
			}
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format. One of: (human | json)")
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Set log level to debug")
	cmd.PersistentFlags().StringVarP(&opts.path, "file", "f", ".", "Path to a manifest file or directory")
	cmd.PersistentFlags().StringVar(&opts.namespace, "namespace", "", "Namespace applied to namespaced objects that do not set their own")
	cmd.PersistentFlags().StringVar(&opts.kubeconfig, "kubeconfig", "", "Path to a kubeconfig file (defaults to KUBECONFIG / ~/.kube/config)")
	return cmd
}

// Execute builds the root command tree and runs it, translating the
// engine's exit-code taxonomy (§6: 0 success, 1 validation error, 2 apply
// failure + rollback, 3 rollback failure) into the process exit code.
func Execute() {
	root := NewRootCommand()
	cli := NewCLI(view.ViewHuman, os.Stdout, view.LogLevelSilent)

	root.AddCommand(
		NewModelCommand(cli),
		NewDeployCommand(cli),
	)

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		viewType, err := view.ParseOutputFormat(outputFlag)
		if err != nil {
			cli.Println("Error:", err)
			os.Exit(1)
		}

		logLevel := view.LogLevelSilent
		if strings.EqualFold(os.Getenv("PICELI_LOG"), "debug") || debugFlag {
			logLevel = view.LogLevelDebug
		} else if strings.EqualFold(os.Getenv("PICELI_LOG"), "info") {
			logLevel = view.LogLevelInfo
		}

		s := view.NewStream(os.Stdout)
		cli.Viewer = view.NewViewer(viewType, s, logLevel)
		cli.Stream = s
	}

	if err := root.Execute(); err != nil {
		var exitErr *exitCodeError
		if asExitCodeError(err, &exitErr) {
			if exitErr.msg != "" {
				cli.Println(exitErr.msg)
			}
			os.Exit(exitErr.code)
		}
		cli.Println(err)
		os.Exit(1)
	}
	os.Exit(0)
}
