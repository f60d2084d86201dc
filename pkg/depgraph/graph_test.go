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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/spectree"
)

func ns(group, version, kind, namespace, name string, spec *spectree.Node) *object.CanonicalObject {
	return object.New(object.NewIdentity(group, version, kind, namespace, name), nil, nil, spec, "test")
}

func TestLayeredDeployScenario(t *testing.T) {
	role := ns("rbac.authorization.k8s.io", "v1", "Role", "default", "example-role", spectree.Map())
	sa := ns("", "v1", "ServiceAccount", "default", "example-sa", spectree.Map())
	sc := ns("storage.k8s.io", "v1", "StorageClass", "", "resizable", spectree.Map())

	rb := ns("rbac.authorization.k8s.io", "v1", "RoleBinding", "default", "example-rb", spectree.Map(
		spectree.Entry{Key: "roleRef", Value: spectree.Map(
			spectree.Entry{Key: "kind", Value: spectree.String("Role")},
			spectree.Entry{Key: "name", Value: spectree.String("example-role")},
		)},
		spectree.Entry{Key: "subjects", Value: spectree.Seq(spectree.Map(
			spectree.Entry{Key: "kind", Value: spectree.String("ServiceAccount")},
			spectree.Entry{Key: "name", Value: spectree.String("example-sa")},
			spectree.Entry{Key: "namespace", Value: spectree.String("default")},
		))},
	))

	secret := ns("", "v1", "Secret", "default", "s", spectree.Map())
	cm := ns("", "v1", "ConfigMap", "default", "cm", spectree.Map())

	pvc := ns("", "v1", "PersistentVolumeClaim", "default", "pvc", spectree.Map(
		spectree.Entry{Key: "spec", Value: spectree.Map(
			spectree.Entry{Key: "storageClassName", Value: spectree.String("resizable")},
		)},
	))

	container := spectree.Map(
		spectree.Entry{Key: "name", Value: spectree.String("app")},
		spectree.Entry{Key: "envFrom", Value: spectree.Seq(
			spectree.Map(spectree.Entry{Key: "configMapRef", Value: spectree.Map(spectree.Entry{Key: "name", Value: spectree.String("cm")})}),
			spectree.Map(spectree.Entry{Key: "secretRef", Value: spectree.Map(spectree.Entry{Key: "name", Value: spectree.String("s")})}),
		)},
		spectree.Entry{Key: "volumeMounts", Value: spectree.Seq()},
	)
	deploySpec := spectree.Map(
		spectree.Entry{Key: "spec", Value: spectree.Map(
			spectree.Entry{Key: "template", Value: spectree.Map(
				spectree.Entry{Key: "metadata", Value: spectree.Map(
					spectree.Entry{Key: "labels", Value: spectree.Map(spectree.Entry{Key: "app", Value: spectree.String("d")})},
				)},
				spectree.Entry{Key: "spec", Value: spectree.Map(
					spectree.Entry{Key: "serviceAccountName", Value: spectree.String("example-sa")},
					spectree.Entry{Key: "containers", Value: spectree.Seq(container)},
					spectree.Entry{Key: "volumes", Value: spectree.Seq(
						spectree.Map(spectree.Entry{Key: "persistentVolumeClaim", Value: spectree.Map(spectree.Entry{Key: "claimName", Value: spectree.String("pvc")})}),
					)},
				)},
			)},
		)},
	)
	deploy := ns("apps", "v1", "Deployment", "default", "d", deploySpec)

	svc := ns("", "v1", "Service", "default", "svc", spectree.Map(
		spectree.Entry{Key: "spec", Value: spectree.Map(
			spectree.Entry{Key: "selector", Value: spectree.Map(spectree.Entry{Key: "app", Value: spectree.String("d")})},
		)},
	))

	cj := ns("batch", "v1", "CronJob", "default", "cj", spectree.Map())

	hpa := ns("autoscaling", "v2", "HorizontalPodAutoscaler", "default", "hpa", spectree.Map(
		spectree.Entry{Key: "spec", Value: spectree.Map(
			spectree.Entry{Key: "scaleTargetRef", Value: spectree.Map(
				spectree.Entry{Key: "kind", Value: spectree.String("Deployment")},
				spectree.Entry{Key: "name", Value: spectree.String("d")},
			)},
		)},
	))

	objects := []*object.CanonicalObject{role, sa, sc, rb, secret, cm, pvc, deploy, svc, cj, hpa}

	layered, err := Plan(objects)
	require.NoError(t, err)

	names := func(ids []object.Identity) []string {
		out := make([]string, len(ids))
		for i, id := range ids {
			out[i] = id.Name
		}
		return out
	}

	// cj carries no fields in this fixture, so it names nothing and floats
	// at level 0 alongside every other object with zero dependencies; s and
	// cm likewise have no outgoing edges of their own (only the workloads
	// that consume them depend on them), so "smallest level strictly
	// greater than every predecessor's level" (§4.2) places them at 0 too,
	// not one level above the RoleBinding that happens to share no edge
	// with them.
	require.Equal(t, 4, layered.Len())
	assert.ElementsMatch(t, []string{"example-role", "example-sa", "resizable", "s", "cm", "cj"}, names(layered.Level(0)))
	assert.ElementsMatch(t, []string{"example-rb", "pvc"}, names(layered.Level(1)))
	assert.ElementsMatch(t, []string{"d"}, names(layered.Level(2)))
	assert.ElementsMatch(t, []string{"svc", "hpa"}, names(layered.Level(3)))
}

func TestDanglingReferenceUnderValidate(t *testing.T) {
	rb := ns("rbac.authorization.k8s.io", "v1", "RoleBinding", "default", "rb", spectree.Map(
		spectree.Entry{Key: "subjects", Value: spectree.Seq(spectree.Map(
			spectree.Entry{Key: "kind", Value: spectree.String("ServiceAccount")},
			spectree.Entry{Key: "name", Value: spectree.String("missing-sa")},
			spectree.Entry{Key: "namespace", Value: spectree.String("default")},
		))},
	))

	_, err := Plan([]*object.CanonicalObject{rb}, WithValidate(true))
	require.Error(t, err)
	var dangling *DanglingReferenceError
	require.ErrorAs(t, err, &dangling)

	_, err = Plan([]*object.CanonicalObject{rb})
	assert.NoError(t, err)
}

func TestServiceWithoutSelectorMatchIsNotAnError(t *testing.T) {
	a := ns("", "v1", "Service", "default", "svc-a", spectree.Map())
	b := ns("", "v1", "Service", "default", "svc-b", spectree.Map())

	// Neither Service carries a selector, so rule 7 never fires; an absent
	// match must not be treated as an error (§4.2).
	_, err := Plan([]*object.CanonicalObject{a, b})
	require.NoError(t, err)
}
