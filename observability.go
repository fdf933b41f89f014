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

import "time"

// ObservabilityRecorder is the router's three-pillars hook: a caller gets
// notified around every match and every rebuild without the core matching
// path importing any specific tracing or metrics library. observability_otel.go
// and observability_prometheus.go are two concrete implementations; an
// embedder can supply its own.
type ObservabilityRecorder interface {
	// OnMatchStart is called before the automaton is walked. The returned
	// ResponseInfo is handed back to OnMatchEnd; implementations that don't
	// need per-match state can return nil.
	OnMatchStart(method, path string) ResponseInfo
	// OnMatchEnd is called after the walk completes, successful or not.
	OnMatchEnd(info ResponseInfo, matched bool, duration time.Duration)
	// OnRebuild is called after every automaton rebuild.
	OnRebuild(terminalCount int, duration time.Duration)
}

// ResponseInfo carries per-match state between OnMatchStart and OnMatchEnd.
// Its shape is deliberately opaque to the router; concrete recorders
// populate it with whatever span or timer they started.
type ResponseInfo interface{}

// noopRecorder is the default ObservabilityRecorder when none is configured.
type noopRecorder struct{}

func (noopRecorder) OnMatchStart(string, string) ResponseInfo     { return nil }
func (noopRecorder) OnMatchEnd(ResponseInfo, bool, time.Duration) {}
func (noopRecorder) OnRebuild(int, time.Duration)                 {}
