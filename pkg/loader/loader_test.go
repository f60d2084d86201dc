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

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configMapYAML = `
apiVersion: v1
kind: ConfigMap
metadata:
  name: demo
  namespace: default
data:
  k: v
`

const serviceYAML = `
apiVersion: v1
kind: Service
metadata:
  name: web
  namespace: default
spec:
  selector:
    app: web
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cm.yaml", configMapYAML)

	objs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, "ConfigMap", objs[0].Identity().GVK.Kind)
	assert.Equal(t, "demo", objs[0].Identity().Name)
}

func TestLoadDirectoryIsSortedAndNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-service.yaml", serviceYAML)
	writeFile(t, dir, "a-configmap.yaml", configMapYAML)
	writeFile(t, dir, "notes.txt", "ignore me")

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "c-configmap.yaml", configMapYAML)

	objs, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, "ConfigMap", objs[0].Identity().GVK.Kind)
	assert.Equal(t, "Service", objs[1].Identity().GVK.Kind)
}

func TestLoadRejectsMissingKind(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", "metadata:\n  name: demo\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cm.txt", configMapYAML)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
