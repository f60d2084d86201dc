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

package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/dynamic"

	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/spectree"
)

// K8sTransport drives a real cluster through a dynamic client, resolving
// each identity's GVK to a GVR via the supplied RESTMapper the same way the
// instance controller's resource client does.
type K8sTransport struct {
	client     dynamic.Interface
	restMapper meta.RESTMapper
	fieldOwner string
}

var _ Transport = (*K8sTransport)(nil)

// NewK8sTransport builds a transport backed by client and restMapper.
// fieldOwner is sent as the field manager on every write.
func NewK8sTransport(client dynamic.Interface, restMapper meta.RESTMapper, fieldOwner string) *K8sTransport {
	if fieldOwner == "" {
		fieldOwner = "piceli"
	}
	return &K8sTransport{client: client, restMapper: restMapper, fieldOwner: fieldOwner}
}

func (t *K8sTransport) resource(id object.Identity) (dynamic.ResourceInterface, error) {
	mapping, err := t.restMapper.RESTMapping(id.GVK.GroupKind(), id.GVK.Version)
	if err != nil {
		return nil, &TerminalError{Op: "RESTMapping", Err: fmt.Errorf("%s: %w", id, err)}
	}
	base := t.client.Resource(mapping.Resource)
	if mapping.Scope.Name() == meta.RESTScopeNameNamespace && id.Namespace != "" {
		return base.Namespace(id.Namespace), nil
	}
	return base, nil
}

func (t *K8sTransport) Get(ctx context.Context, id object.Identity) (*object.CanonicalObject, error) {
	ri, err := t.resource(id)
	if err != nil {
		return nil, err
	}
	u, err := ri.Get(ctx, id.Name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, &NotFoundError{Identity: id}
		}
		return nil, classify("Get", id, err)
	}
	return object.FromUnstructured(u, "cluster"), nil
}

func (t *K8sTransport) Create(ctx context.Context, obj *object.CanonicalObject) error {
	id := obj.Identity()
	ri, err := t.resource(id)
	if err != nil {
		return err
	}
	_, err = ri.Create(ctx, obj.ToUnstructured(), metav1.CreateOptions{FieldManager: t.fieldOwner})
	if err != nil {
		return classify("Create", id, err)
	}
	return nil
}

func (t *K8sTransport) Patch(ctx context.Context, id object.Identity, mergePatch *spectree.Node) error {
	ri, err := t.resource(id)
	if err != nil {
		return err
	}
	body, err := json.Marshal(spectree.ToInterface(mergePatch))
	if err != nil {
		return &TerminalError{Op: "Patch", Err: fmt.Errorf("%s: encode merge patch: %w", id, err)}
	}
	_, err = ri.Patch(ctx, id.Name, types.MergePatchType, body, metav1.PatchOptions{FieldManager: t.fieldOwner})
	if err != nil {
		return classify("Patch", id, err)
	}
	return nil
}

func (t *K8sTransport) Replace(ctx context.Context, obj *object.CanonicalObject) error {
	id := obj.Identity()
	_, err := t.resource(id)
	if err != nil {
		return err
	}
	if err := t.Delete(ctx, id); err != nil && !IsNotFound(err) {
		return err
	}
	return t.Create(ctx, obj)
}

func (t *K8sTransport) Delete(ctx context.Context, id object.Identity) error {
	ri, err := t.resource(id)
	if err != nil {
		return err
	}
	if err := ri.Delete(ctx, id.Name, metav1.DeleteOptions{}); err != nil {
		if apierrors.IsNotFound(err) {
			return nil
		}
		return classify("Delete", id, err)
	}
	return nil
}

// Watch is not implemented by K8sTransport: readiness is polled via Get.
func (t *K8sTransport) Watch(ctx context.Context, id object.Identity) (<-chan *object.CanonicalObject, bool) {
	return nil, false
}

// classify sorts a client-go error into the transient/terminal taxonomy the
// executor's retry loop understands.
func classify(op string, id object.Identity, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || apierrors.IsConflict(err) || apierrors.IsServerTimeout(err) || apierrors.IsTimeout(err) ||
		apierrors.IsTooManyRequests(err) || apierrors.IsServiceUnavailable(err) {
		return &TransientError{Op: op, Err: fmt.Errorf("%s: %w", id, err)}
	}
	return &TerminalError{Op: op, Err: fmt.Errorf("%s: %w", id, err)}
}
