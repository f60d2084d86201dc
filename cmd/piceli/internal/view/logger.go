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
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
)

// LogLevel gates which diagnostics reach the stream.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelSilent
)

// Logger is a thin alias so commands don't import go-logr/logr directly.
type Logger = logr.Logger

func newLogger(w io.Writer, level LogLevel, jsonOutput bool) Logger {
	if level == LogLevelSilent {
		return logr.Discard()
	}
	var sink logr.LogSink
	if jsonOutput {
		sink = &jsonSink{w: w, level: level}
	} else {
		sink = &humanSink{w: w, level: level}
	}
	return logr.New(sink)
}

type humanSink struct {
	w      io.Writer
	level  LogLevel
	name   string
	values []any
}

func (s *humanSink) Init(logr.RuntimeInfo) {}

func (s *humanSink) Enabled(level int) bool {
	return s.level == LogLevelDebug || level == 0
}

func (s *humanSink) Info(level int, msg string, kv ...any) {
	tag := color.GreenString("INFO")
	if level > 0 {
		tag = color.CyanString("DEBUG")
	}
	fmt.Fprintln(s.w, tag, s.prefix()+msg, formatKV(append(s.values, kv...)))
}

func (s *humanSink) Error(err error, msg string, kv ...any) {
	fmt.Fprintln(s.w, color.RedString("ERROR"), s.prefix()+msg+":", err, formatKV(append(s.values, kv...)))
}

func (s *humanSink) WithValues(kv ...any) logr.LogSink {
	return &humanSink{w: s.w, level: s.level, name: s.name, values: append(append([]any{}, s.values...), kv...)}
}

func (s *humanSink) WithName(name string) logr.LogSink {
	next := *s
	if next.name == "" {
		next.name = name
	} else {
		next.name = next.name + "." + name
	}
	return &next
}

func (s *humanSink) prefix() string {
	if s.name == "" {
		return ""
	}
	return s.name + ": "
}

func formatKV(kv []any) string {
	if len(kv) == 0 {
		return ""
	}
	parts := make([]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		parts = append(parts, fmt.Sprintf("%v=%v", kv[i], kv[i+1]))
	}
	return strings.Join(parts, " ")
}

type jsonSink struct {
	w      io.Writer
	level  LogLevel
	name   string
	values []any
}

func (s *jsonSink) Init(logr.RuntimeInfo) {}

func (s *jsonSink) Enabled(level int) bool {
	return s.level == LogLevelDebug || level == 0
}

func (s *jsonSink) record(severity, msg string, errStr string, kv []any) {
	out := map[string]any{"level": severity, "logger": s.name, "msg": msg}
	if errStr != "" {
		out["error"] = errStr
	}
	all := append(append([]any{}, s.values...), kv...)
	for i := 0; i+1 < len(all); i += 2 {
		out[fmt.Sprint(all[i])] = all[i+1]
	}
	if data, err := json.Marshal(out); err == nil {
		fmt.Fprintln(s.w, string(data))
	}
}

func (s *jsonSink) Info(level int, msg string, kv ...any) {
	severity := "info"
	if level > 0 {
		severity = "debug"
	}
	s.record(severity, msg, "", kv)
}

func (s *jsonSink) Error(err error, msg string, kv ...any) {
	s.record("error", msg, err.Error(), kv)
}

func (s *jsonSink) WithValues(kv ...any) logr.LogSink {
	return &jsonSink{w: s.w, level: s.level, name: s.name, values: append(append([]any{}, s.values...), kv...)}
}

func (s *jsonSink) WithName(name string) logr.LogSink {
	next := *s
	if next.name == "" {
		next.name = name
	} else {
		next.name = next.name + "." + name
	}
	return &next
}
