// Copyright 2025 The Rivaas Authors
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

package router

// DiagnosticKind classifies a DiagnosticEvent.
type DiagnosticKind int

const (
	// DiagRouteRegistered fires once per successful Add.
	DiagRouteRegistered DiagnosticKind = iota
	// DiagRebuild fires once per completed automaton rebuild, fresh or
	// idempotent-repeat.
	DiagRebuild
	// DiagPlaceholderCountHigh fires when a pattern registers more than
	// half of the placeholder budget, a configuration smell worth
	// surfacing before it hits the hard cap.
	DiagPlaceholderCountHigh
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagRouteRegistered:
		return "route_registered"
	case DiagRebuild:
		return "rebuild"
	case DiagPlaceholderCountHigh:
		return "placeholder_count_high"
	default:
		return "unknown"
	}
}

// DiagnosticEvent is a point-in-time notice the router emits for anomalies
// and lifecycle milestones that are not errors but are worth a caller being
// able to observe.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any
}

// DiagnosticHandler receives DiagnosticEvents as they occur. It must not
// block; the router calls it synchronously on the goroutine that triggered
// the event.
type DiagnosticHandler interface {
	HandleDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc adapts a plain function to DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

// HandleDiagnostic implements DiagnosticHandler.
func (f DiagnosticHandlerFunc) HandleDiagnostic(e DiagnosticEvent) { f(e) }

func (r *Router) emit(kind DiagnosticKind, message string, fields map[string]any) {
	if r.diagnostics == nil {
		return
	}
	r.diagnostics.HandleDiagnostic(DiagnosticEvent{Kind: kind, Message: message, Fields: fields})
}
