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

// Package view renders command results to a stream, either as colored
// human-readable text or as machine-parseable JSON.
package view

import "fmt"

// ViewType selects the rendering mode.
type ViewType rune

const (
	ViewHuman ViewType = 'H'
	ViewJSON  ViewType = 'J'
)

// ParseOutputFormat maps the `-o`/`--output` flag value to a ViewType.
// An empty string defaults to human output.
func ParseOutputFormat(s string) (ViewType, error) {
	switch s {
	case "", "human":
		return ViewHuman, nil
	case "json":
		return ViewJSON, nil
	default:
		return ViewHuman, fmt.Errorf("unknown output format %q, expected json", s)
	}
}

var _ Viewer = (*HumanView)(nil)
var _ Viewer = (*JSONView)(nil)

// Viewer renders all four CLI operations and exposes a logger for
// diagnostic output, both tied to the same output format and stream.
type Viewer interface {
	Logger() Logger
	RenderModelList(ModelListResult)
	RenderPlan(PlanResult)
	RenderDetail(DetailResult)
	RenderDeploy(DeployResult)
}

// NewViewer builds the Viewer for the requested format.
func NewViewer(vt ViewType, s *Stream, level LogLevel) Viewer {
	switch vt {
	case ViewHuman:
		return NewHumanView(s, level)
	case ViewJSON:
		return NewJSONView(s, level)
	default:
		panic("unknown view type")
	}
}

// HumanView renders colored, line-oriented text.
type HumanView struct {
	*Stream
	logger Logger
}

func NewHumanView(s *Stream, level LogLevel) *HumanView {
	return &HumanView{Stream: s, logger: newLogger(s.Writer, level, false)}
}

func (h *HumanView) Logger() Logger { return h.logger }

// JSONView renders one JSON object per call, for machine consumption.
type JSONView struct {
	*Stream
	logger Logger
}

func NewJSONView(s *Stream, level LogLevel) *JSONView {
	return &JSONView{Stream: s, logger: newLogger(s.Writer, level, true)}
}

func (j *JSONView) Logger() Logger { return j.logger }
