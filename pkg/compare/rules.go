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

package compare

import (
	"strings"

	"github.com/pynenc/piceli/pkg/spectree"
)

// globalIgnoredExact are server-managed metadata fields ignored regardless
// of kind.
var globalIgnoredExact = map[string]bool{
	"metadata.creationTimestamp": true,
	"metadata.resourceVersion":   true,
	"metadata.uid":               true,
	"metadata.generation":        true,
	"metadata.selfLink":          true,
	"metadata.managedFields":     true,
}

// kindIgnoredExact extends globalIgnoredExact per kind. Data, not code, so
// it can grow without touching the walker (design note, §9).
var kindIgnoredExact = map[string]map[string]bool{}

const statusPath = "status"

func classifyIgnored(path, kind string, desired *spectree.Node) bool {
	if path == statusPath || strings.HasPrefix(path, statusPath+".") || strings.HasPrefix(path, statusPath+"[") {
		return true
	}
	if globalIgnoredExact[path] {
		return true
	}
	if kindIgnoredExact[kind] != nil && kindIgnoredExact[kind][path] {
		return true
	}
	if path == "metadata.ownerReferences" && isEmptyOrAbsent(desired) {
		return true
	}
	return false
}

func isEmptyOrAbsent(n *spectree.Node) bool {
	if n == nil || n.Kind == spectree.KindNull {
		return true
	}
	return n.Kind == spectree.KindSeq && len(n.Seq) == 0
}

// defaultRule pairs a path with the value the server is known to fill in
// when the desired side omits it.
type defaultRule struct {
	Path  string
	Value *spectree.Node
}

// kindDefaults records known server defaults per kind (design note, §9).
// Unknown (kind, path) combinations fall through to Differing.
var kindDefaults = map[string][]defaultRule{
	"StorageClass": {
		{Path: "reclaimPolicy", Value: spectree.String("Delete")},
		{Path: "volumeBindingMode", Value: spectree.String("Immediate")},
	},
	"Deployment": {
		{Path: "spec.revisionHistoryLimit", Value: spectree.Int(10)},
		{Path: "spec.strategy.type", Value: spectree.String("RollingUpdate")},
		{Path: "spec.progressDeadlineSeconds", Value: spectree.Int(600)},
	},
	"Service": {
		{Path: "spec.sessionAffinity", Value: spectree.String("None")},
		{Path: "spec.type", Value: spectree.String("ClusterIP")},
	},
	"ServiceAccount": {
		{Path: "automountServiceAccountToken", Value: spectree.Bool(true)},
	},
}

func isDefaulted(kind, path string, live *spectree.Node) bool {
	for _, r := range kindDefaults[kind] {
		if r.Path == path && spectree.Equal(r.Value, live) {
			return true
		}
	}
	return false
}
