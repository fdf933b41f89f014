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

import "github.com/dfamux/router/internal/rlog"

// Option configures a Router at construction time.
type Option func(*Router)

// WithBloomFilter turns on the literal-pattern bloom filter prefilter (see
// compiler.BloomFilter) with the given bit-array size and hash function
// count. Without this option the router always walks the automaton.
func WithBloomFilter(size uint64, numHashFuncs int) Option {
	return func(r *Router) {
		r.engine.EnableBloomFilter(size, numHashFuncs)
	}
}

// WithDiagnostics installs a handler for lifecycle and anomaly events
// (route registration, rebuilds, high placeholder counts).
func WithDiagnostics(h DiagnosticHandler) Option {
	return func(r *Router) { r.diagnostics = h }
}

// WithObservability installs a recorder wrapping every match and rebuild.
// See OTelRecorder and PrometheusRecorder for ready-made implementations.
func WithObservability(rec ObservabilityRecorder) Option {
	return func(r *Router) { r.observability = rec }
}

// WithLogger installs the logger used for registration errors and
// lifecycle messages. The router never logs on the match hot path. A nil
// logger installs rlog.Discard.
func WithLogger(l *rlog.Logger) Option {
	return func(r *Router) {
		if l == nil {
			l = rlog.Discard()
		}
		r.logger = l
	}
}

// WithEagerRebuild makes every Add synchronously rebuild the automaton
// instead of deferring to the next Match. This trades registration-time
// latency for removing the rebuild check from the match path; it is
// intended for routers whose routes are all registered at startup.
func WithEagerRebuild(eager bool) Option {
	return func(r *Router) { r.eagerRebuild = eager }
}
