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

// Package loader is a minimal directory-of-manifests stand-in for the
// Loader -> Core boundary (§6): it reads raw YAML/JSON documents and
// normalizes them into CanonicalObjects. The full multi-source loader
// (templates, programmatic sources) is out of scope; this exists so the
// CLI and engine have a real object set to run against.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/yaml"

	"github.com/pynenc/piceli/pkg/object"
)

// collectManifestFiles returns YAML/JSON file paths from path. A file path
// returns a single-element slice; a directory returns every .yaml/.yml/
// .json file directly inside it (non-recursive), sorted for determinism.
func collectManifestFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		if !isManifestExt(filepath.Ext(path)) {
			return nil, fmt.Errorf("file %q must have a .yaml, .yml, or .json extension", path)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isManifestExt(filepath.Ext(entry.Name())) {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func isManifestExt(ext string) bool {
	return ext == ".yaml" || ext == ".yml" || ext == ".json"
}

// Load reads path (a file or a directory of manifests) and returns one
// CanonicalObject per document, tagged with its source file as origin.
func Load(path string) ([]*object.CanonicalObject, error) {
	files, err := collectManifestFiles(path)
	if err != nil {
		return nil, err
	}

	objects := make([]*object.CanonicalObject, 0, len(files))
	for _, file := range files {
		obj, err := loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %q: %w", file, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func loadFile(path string) (*object.CanonicalObject, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	u := &unstructured.Unstructured{Object: raw}
	if u.GetKind() == "" {
		return nil, fmt.Errorf("missing kind")
	}
	if u.GetName() == "" {
		return nil, fmt.Errorf("missing metadata.name")
	}

	return object.FromUnstructured(u, path), nil
}
