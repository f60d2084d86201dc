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

package view

import (
	"encoding/json"

	"github.com/fatih/color"

	"github.com/pynenc/piceli/pkg/object"
	"github.com/pynenc/piceli/pkg/reconcile"
)

// ModelListResult is the output of `model list`.
type ModelListResult struct {
	Objects []ModelObject
}

type ModelObject struct {
	Identity object.Identity
	Origin   string
}

// PlanResult is the output of `deploy plan`.
type PlanResult struct {
	Levels [][]object.Identity
	// ValidationErr is set when planning found a CycleDetected problem, or,
	// with `-v`, a DanglingReference problem; Levels is empty in that case.
	ValidationErr error
}

// DetailRow is one object's comparator-derived action, as shown by
// `deploy detail`.
type DetailRow struct {
	Level    int
	Identity object.Identity
	Action   reconcile.Kind
	Diffs    int
}

// DetailResult is the output of `deploy detail`.
type DetailResult struct {
	Rows []DetailRow
}

// DeployResult is the output of `deploy run`.
type DeployResult struct {
	Applied      []object.Identity
	Failed       map[object.Identity]string
	RolledBack   []object.Identity
	RollbackFail map[object.Identity]string
}

func (r DeployResult) OK() bool {
	return len(r.Failed) == 0
}

func (r DeployResult) RollbackOK() bool {
	return len(r.RollbackFail) == 0
}

// Human rendering.

func (h *HumanView) RenderModelList(r ModelListResult) {
	for _, o := range r.Objects {
		h.Printf("%s  %s\n", o.Identity, color.HiBlackString(o.Origin))
	}
}

func (h *HumanView) RenderPlan(r PlanResult) {
	if r.ValidationErr != nil {
		h.Println(color.RedString("validation failed:"), r.ValidationErr)
		return
	}
	for i, level := range r.Levels {
		h.Println(color.RGB(50, 108, 229).Sprintf("level %d", i))
		for _, id := range level {
			h.Printf("  %s\n", id)
		}
	}
}

func (h *HumanView) RenderDetail(r DetailResult) {
	for _, row := range r.Rows {
		c := actionColor(row.Action)
		h.Printf("[L%d] %-10s %s  (%d field(s) differing)\n", row.Level, c.Sprint(row.Action), row.Identity, row.Diffs)
	}
}

func (h *HumanView) RenderDeploy(r DeployResult) {
	for _, id := range r.Applied {
		h.Println(color.GreenString("applied"), id)
	}
	for id, msg := range r.Failed {
		h.Println(color.RedString("failed"), id, "-", msg)
	}
	for _, id := range r.RolledBack {
		h.Println(color.YellowString("rolled back"), id)
	}
	for id, msg := range r.RollbackFail {
		h.Println(color.RedString("rollback failed"), id, "-", msg)
	}
	if r.OK() {
		h.Println(color.GreenString("deploy succeeded"))
	} else if r.RollbackOK() {
		h.Println(color.YellowString("deploy failed, rollback complete"))
	} else {
		h.Println(color.RedString("deploy failed, rollback incomplete"))
	}
}

func actionColor(k reconcile.Kind) *color.Color {
	switch k {
	case reconcile.Create:
		return color.New(color.FgGreen)
	case reconcile.Replace:
		return color.New(color.FgYellow)
	case reconcile.Patch:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgHiBlack)
	}
}

// JSON rendering.

func (j *JSONView) print(v any) {
	if data, err := json.Marshal(v); err == nil {
		j.Println(string(data))
	}
}

func (j *JSONView) RenderModelList(r ModelListResult) {
	type row struct {
		Identity string `json:"identity"`
		Origin   string `json:"origin"`
	}
	rows := make([]row, len(r.Objects))
	for i, o := range r.Objects {
		rows[i] = row{Identity: o.Identity.String(), Origin: o.Origin}
	}
	j.print(map[string]any{"type": "model_list", "objects": rows})
}

func (j *JSONView) RenderPlan(r PlanResult) {
	if r.ValidationErr != nil {
		j.print(map[string]any{"type": "plan", "status": "error", "error": r.ValidationErr.Error()})
		return
	}
	levels := make([][]string, len(r.Levels))
	for i, level := range r.Levels {
		ids := make([]string, len(level))
		for k, id := range level {
			ids[k] = id.String()
		}
		levels[i] = ids
	}
	j.print(map[string]any{"type": "plan", "status": "success", "levels": levels})
}

func (j *JSONView) RenderDetail(r DetailResult) {
	type row struct {
		Level    int    `json:"level"`
		Identity string `json:"identity"`
		Action   string `json:"action"`
		Diffs    int    `json:"diffs"`
	}
	rows := make([]row, len(r.Rows))
	for i, d := range r.Rows {
		rows[i] = row{Level: d.Level, Identity: d.Identity.String(), Action: d.Action.String(), Diffs: d.Diffs}
	}
	j.print(map[string]any{"type": "detail", "rows": rows})
}

func (j *JSONView) RenderDeploy(r DeployResult) {
	status := "success"
	if !r.OK() {
		if r.RollbackOK() {
			status = "rolled_back"
		} else {
			status = "rollback_failed"
		}
	}
	out := map[string]any{
		"type":   "deploy",
		"status": status,
		"applied": func() []string {
			s := make([]string, len(r.Applied))
			for i, id := range r.Applied {
				s[i] = id.String()
			}
			return s
		}(),
	}
	if len(r.Failed) > 0 {
		failed := make(map[string]string, len(r.Failed))
		for id, msg := range r.Failed {
			failed[id.String()] = msg
		}
		out["failed"] = failed
	}
	if len(r.RollbackFail) > 0 {
		rbFailed := make(map[string]string, len(r.RollbackFail))
		for id, msg := range r.RollbackFail {
			rbFailed[id.String()] = msg
		}
		out["rollback_failed"] = rbFailed
	}
	j.print(out)
}
