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

package reconcile

import "strings"

// wholeKindImmutable lists kinds whose spec is treated as immutable in its
// entirety: any Differing path at all forces REPLACE rather than PATCH.
var wholeKindImmutable = map[string]bool{
	"Job":              true,
	"PersistentVolume": true,
	"StorageClass":     true,
}

// immutablePathPrefixes names, per kind, path prefixes the live server
// rejects as an update — any Differing path under one of these forces
// REPLACE even for kinds that otherwise accept PATCH.
var immutablePathPrefixes = map[string][]string{
	"Service":               {"spec.selector", "spec.clusterIP"},
	"PersistentVolumeClaim": {"spec.storageClassName", "spec.accessModes", "spec.resources.requests.storage"},
}

// requiresReplace reports whether kind/path combination mandates REPLACE
// instead of PATCH (§4.4).
func requiresReplace(kind, path string) bool {
	if wholeKindImmutable[kind] {
		return true
	}
	for _, prefix := range immutablePathPrefixes[kind] {
		if path == prefix || strings.HasPrefix(path, prefix+".") || strings.HasPrefix(path, prefix+"[") {
			return true
		}
	}
	return false
}
