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

package command_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pynenc/piceli/cmd/piceli/internal/command"
	"github.com/pynenc/piceli/cmd/piceli/internal/view"
)

const configMapManifest = `
apiVersion: v1
kind: ConfigMap
metadata:
  name: demo
  namespace: default
data:
  k: v
`

func TestModelListPrintsLoadedObjects(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cm.yaml"), []byte(configMapManifest), 0o644))

	var out bytes.Buffer
	cli := command.NewCLI(view.ViewHuman, &out, view.LogLevelSilent)

	root := command.NewRootCommand()
	root.AddCommand(command.NewModelCommand(cli))
	root.SetArgs([]string{"model", "list", "-f", dir})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "ConfigMap")
	assert.Contains(t, out.String(), "demo")
}

func TestDeployPlanBuildsLevels(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cm.yaml"), []byte(configMapManifest), 0o644))

	var out bytes.Buffer
	cli := command.NewCLI(view.ViewHuman, &out, view.LogLevelSilent)

	root := command.NewRootCommand()
	root.AddCommand(command.NewDeployCommand(cli))
	root.SetArgs([]string{"deploy", "plan", "-f", dir})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "level 0")
}
