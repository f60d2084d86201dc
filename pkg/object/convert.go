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

package object

import "github.com/pynenc/piceli/pkg/spectree"

// Reference holds a (kind, namespace, name) pointer to another object,
// used by the dependency resolver's edge-inference rules. Namespace is
// empty when the reference is cluster-scoped or inherits the referrer's
// namespace.
type Reference struct {
	Kind      string
	Namespace string
	Name      string
}

// podSpecPath returns, for a given workload Kind, the path from the spec
// tree root down to the embedded PodSpec. Kind-specific nesting is kept as
// data here rather than scattered conditionals across callers.
func podSpecPath(kind string) []string {
	switch kind {
	case "Pod":
		return []string{"spec"}
	case "CronJob":
		return []string{"spec", "jobTemplate", "spec", "template", "spec"}
	default:
		// Deployment, StatefulSet, DaemonSet, Job, ReplicaSet.
		return []string{"spec", "template", "spec"}
	}
}

// podTemplateLabelsPath mirrors podSpecPath but resolves to the pod
// template's metadata.labels (used for Service selector matching, rule 7).
func podTemplateLabelsPath(kind string) []string {
	switch kind {
	case "Pod":
		return []string{"metadata", "labels"}
	case "CronJob":
		return []string{"spec", "jobTemplate", "spec", "template", "metadata", "labels"}
	default:
		return []string{"spec", "template", "metadata", "labels"}
	}
}

// PodSpec resolves the embedded PodSpec node for workload kinds.
func (o *CanonicalObject) PodSpec() *spectree.Node {
	return spectree.Path(o.spec, podSpecPath(o.identity.GVK.Kind)...)
}

// PodTemplateLabels resolves the workload's pod template labels, used to
// match against a Service's selector (edge rule 7).
func (o *CanonicalObject) PodTemplateLabels() map[string]string {
	node := spectree.Path(o.spec, podTemplateLabelsPath(o.identity.GVK.Kind)...)
	return mapOfStrings(node)
}

// ServiceAccountName returns spec.serviceAccountName for this workload, if
// set (edge rule 3).
func (o *CanonicalObject) ServiceAccountName() (string, bool) {
	return spectree.Path(o.PodSpec(), "serviceAccountName").AsString()
}

// ConfigMapRefs returns the names of every ConfigMap this workload
// references via volumes, envFrom, or valueFrom (edge rule 4).
func (o *CanonicalObject) ConfigMapRefs() []string {
	return dedup(append(
		o.volumeRefs("configMap", "name"),
		o.containerEnvRefs("configMapRef", "configMapKeyRef")...,
	))
}

// SecretRefs returns the names of every Secret this workload references via
// volumes, envFrom, or valueFrom (edge rule 4).
func (o *CanonicalObject) SecretRefs() []string {
	return dedup(append(
		o.volumeRefs("secret", "secretName"),
		o.containerEnvRefs("secretRef", "secretKeyRef")...,
	))
}

// PVCRefs returns the names of every PersistentVolumeClaim this workload
// mounts (edge rule 5).
func (o *CanonicalObject) PVCRefs() []string {
	return dedup(o.volumeRefs("persistentVolumeClaim", "claimName"))
}

// volumeRefs walks spec.volumes[] looking for entries shaped
// {<sourceKey>: {<nameField>: "..."}}. Used for configMap/secret/PVC volume
// sources, whose K8s API shapes differ only in the inner field name.
func (o *CanonicalObject) volumeRefs(sourceKey, nameField string) []string {
	volumes, _ := spectree.Path(o.PodSpec(), "volumes").AsSeq()
	var out []string
	for _, v := range volumes {
		src := v.Get(sourceKey)
		if src == nil {
			continue
		}
		if name, ok := src.Get(nameField).AsString(); ok && name != "" {
			out = append(out, name)
		}
	}
	return out
}

// containerEnvRefs walks every container and initContainer's envFrom and
// env[].valueFrom looking for the given reference field names.
func (o *CanonicalObject) containerEnvRefs(envFromField, valueFromField string) []string {
	var out []string
	for _, containersKey := range []string{"containers", "initContainers"} {
		containers, _ := spectree.Path(o.PodSpec(), containersKey).AsSeq()
		for _, c := range containers {
			envFrom, _ := c.Get("envFrom").AsSeq()
			for _, ef := range envFrom {
				if name, ok := ef.Get(envFromField).Get("name").AsString(); ok && name != "" {
					out = append(out, name)
				}
			}
			env, _ := c.Get("env").AsSeq()
			for _, e := range env {
				valueFrom := e.Get("valueFrom")
				if name, ok := valueFrom.Get(valueFromField).Get("name").AsString(); ok && name != "" {
					out = append(out, name)
				}
			}
		}
	}
	return out
}

// StorageClassName returns a PersistentVolumeClaim's spec.storageClassName,
// if named (edge rule 5).
func (o *CanonicalObject) StorageClassName() (string, bool) {
	return spectree.Path(o.spec, "spec", "storageClassName").AsString()
}

// ScaleTargetRef returns the (kind, name) an HPA/VPA targets (edge rule 6).
func (o *CanonicalObject) ScaleTargetRef() (Reference, bool) {
	ref := spectree.Path(o.spec, "spec", "scaleTargetRef")
	if ref == nil {
		return Reference{}, false
	}
	kind, _ := ref.Get("kind").AsString()
	name, _ := ref.Get("name").AsString()
	if kind == "" || name == "" {
		return Reference{}, false
	}
	return Reference{Kind: kind, Namespace: o.identity.Namespace, Name: name}, true
}

// RoleRef returns the Role/ClusterRole a RoleBinding/ClusterRoleBinding
// names (edge rule 2).
func (o *CanonicalObject) RoleRef() (Reference, bool) {
	ref := spectree.Path(o.spec, "roleRef")
	if ref == nil {
		return Reference{}, false
	}
	kind, _ := ref.Get("kind").AsString()
	name, _ := ref.Get("name").AsString()
	if kind == "" || name == "" {
		return Reference{}, false
	}
	return Reference{Kind: kind, Name: name}, true
}

// Subjects returns the ServiceAccount subjects a RoleBinding/
// ClusterRoleBinding references (edge rule 2). Non-ServiceAccount subjects
// are omitted since only ServiceAccounts participate in dependency edges.
func (o *CanonicalObject) Subjects() []Reference {
	subjects, _ := spectree.Path(o.spec, "subjects").AsSeq()
	var out []Reference
	for _, s := range subjects {
		kind, _ := s.Get("kind").AsString()
		if kind != "ServiceAccount" {
			continue
		}
		name, _ := s.Get("name").AsString()
		namespace, _ := s.Get("namespace").AsString()
		if name == "" {
			continue
		}
		out = append(out, Reference{Kind: kind, Namespace: namespace, Name: name})
	}
	return out
}

// Selector returns a Service's spec.selector (edge rule 7).
func (o *CanonicalObject) Selector() map[string]string {
	return mapOfStrings(spectree.Path(o.spec, "spec", "selector"))
}

func mapOfStrings(n *spectree.Node) map[string]string {
	if n == nil || n.Kind != spectree.KindMap {
		return nil
	}
	out := make(map[string]string, len(n.Map))
	for _, e := range n.Map {
		if s, ok := e.Value.AsString(); ok {
			out[e.Key] = s
		}
	}
	return out
}

func dedup(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// ContainerImages returns every container image referenced by this
// workload's pod template, a pure kind-specific convenience offered on top
// of the spec tree (spec.md §4.1).
func (o *CanonicalObject) ContainerImages() []string {
	var out []string
	for _, containersKey := range []string{"containers", "initContainers"} {
		containers, _ := spectree.Path(o.PodSpec(), containersKey).AsSeq()
		for _, c := range containers {
			if img, ok := c.Get("image").AsString(); ok && img != "" {
				out = append(out, img)
			}
		}
	}
	return out
}

// OwnerReferences returns metadata.ownerReferences as (kind, name) pairs.
// The comparator's ignored-path rule for ownerReferences does not use it; it
// inspects the spec tree directly.
func (o *CanonicalObject) OwnerReferences() []Reference {
	refs, _ := spectree.Path(o.spec, "metadata", "ownerReferences").AsSeq()
	var out []Reference
	for _, r := range refs {
		kind, _ := r.Get("kind").AsString()
		name, _ := r.Get("name").AsString()
		out = append(out, Reference{Kind: kind, Name: name})
	}
	return out
}
