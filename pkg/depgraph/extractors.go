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

package depgraph

import "github.com/pynenc/piceli/pkg/object"

// extractorFunc yields the identity references a single object names,
// independent of whether those targets are present in the input set —
// resolution against the set happens in builder.go.
type extractorFunc func(obj *object.CanonicalObject) []object.Reference

// extractors centralizes reference discovery per kind (design note, §9):
// a small (kind) -> extractor table rather than a type hierarchy, so the
// resolver stays kind-aware without coupling to the loader's template
// classes.
var extractors = map[string]extractorFunc{
	"RoleBinding":             rbacBindingRefs,
	"ClusterRoleBinding":      rbacBindingRefs,
	"Deployment":              workloadRefs,
	"StatefulSet":             workloadRefs,
	"DaemonSet":               workloadRefs,
	"ReplicaSet":              workloadRefs,
	"Job":                     workloadRefs,
	"CronJob":                 workloadRefs,
	"Pod":                     workloadRefs,
	"PersistentVolumeClaim":   pvcRefs,
	"HorizontalPodAutoscaler": scaleTargetRefs,
	"VerticalPodAutoscaler":   scaleTargetRefs,
}

func extractReferences(obj *object.CanonicalObject) []object.Reference {
	fn, ok := extractors[obj.Identity().GVK.Kind]
	if !ok {
		return nil
	}
	return fn(obj)
}

// rbacBindingRefs implements edge rule 2: a RoleBinding/ClusterRoleBinding
// depends on the Role/ClusterRole it names and every ServiceAccount
// subject it references.
func rbacBindingRefs(obj *object.CanonicalObject) []object.Reference {
	var refs []object.Reference
	if roleRef, ok := obj.RoleRef(); ok {
		refs = append(refs, roleRef)
	}
	refs = append(refs, obj.Subjects()...)
	return refs
}

// workloadRefs implements edge rules 3, 4, and 5: a workload depends on its
// ServiceAccount, the ConfigMaps/Secrets it consumes, and the PVCs it
// mounts.
func workloadRefs(obj *object.CanonicalObject) []object.Reference {
	var refs []object.Reference
	if sa, ok := obj.ServiceAccountName(); ok && sa != "" {
		refs = append(refs, object.Reference{Kind: "ServiceAccount", Name: sa})
	}
	for _, name := range obj.ConfigMapRefs() {
		refs = append(refs, object.Reference{Kind: "ConfigMap", Name: name})
	}
	for _, name := range obj.SecretRefs() {
		refs = append(refs, object.Reference{Kind: "Secret", Name: name})
	}
	for _, name := range obj.PVCRefs() {
		refs = append(refs, object.Reference{Kind: "PersistentVolumeClaim", Name: name})
	}
	return refs
}

// pvcRefs implements the second half of edge rule 5: a PVC depends on its
// named StorageClass.
func pvcRefs(obj *object.CanonicalObject) []object.Reference {
	if name, ok := obj.StorageClassName(); ok && name != "" {
		return []object.Reference{{Kind: "StorageClass", Name: name}}
	}
	return nil
}

// scaleTargetRefs implements edge rule 6: an HPA/VPA depends on its
// scaleTargetRef.
func scaleTargetRefs(obj *object.CanonicalObject) []object.Reference {
	if ref, ok := obj.ScaleTargetRef(); ok {
		return []object.Reference{ref}
	}
	return nil
}
