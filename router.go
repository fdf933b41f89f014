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

import (
	"net/http"
	"strings"
	"time"

	"github.com/dfamux/router/compiler"
	"github.com/dfamux/router/internal/rlog"
)

// Router dispatches HTTP requests to handlers registered with Add (and its
// per-method convenience wrappers), using a compiler.Engine to do the
// actual pattern matching. A Router is safe for concurrent Match/ServeHTTP
// calls; concurrent registration with in-flight matches is not (see
// compiler's concurrency notes).
type Router struct {
	prefix string
	engine *compiler.Engine

	logger        *rlog.Logger
	diagnostics   DiagnosticHandler
	observability ObservabilityRecorder
	eagerRebuild  bool
}

// routeEntry is the opaque Terminal.Data every Add call stores: the HTTP
// method the pattern was registered under, and the handler to invoke.
type routeEntry struct {
	method  string
	handler HandlerFunc
}

// New returns a Router that only serves paths beginning with prefix
// (an empty prefix serves everything). The automaton starts empty and not
// stale; the first Add marks it stale.
func New(prefix string, opts ...Option) *Router {
	r := &Router{
		prefix:        prefix,
		engine:        compiler.NewEngine(),
		logger:        rlog.Discard(),
		observability: noopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MustNew is New with an empty prefix, matching the common case of one
// router serving an entire process.
func MustNew(opts ...Option) *Router {
	return New("", opts...)
}

// Add registers one (method, pattern, handler) terminal. Registration
// errors (malformed pattern, too many placeholders, nil handler) reject
// the call and leave the router unchanged.
func (r *Router) Add(method, pattern string, handler HandlerFunc, topts ...compiler.TerminalOption) (*Router, error) {
	if handler == nil {
		return r, ErrNilHandler
	}

	term, err := r.engine.AddTerminal(pattern, &routeEntry{method: method, handler: handler}, topts...)
	if err != nil {
		r.logger.Error("route registration failed", "method", method, "pattern", pattern, "error", err)
		return r, err
	}

	if len(term.Names) > compiler.MaxPlaceholders/2 {
		r.emit(DiagPlaceholderCountHigh, "pattern declares a high placeholder count", map[string]any{
			"method": method, "pattern": pattern, "count": len(term.Names),
		})
	}
	r.emit(DiagRouteRegistered, "route registered", map[string]any{"method": method, "pattern": pattern})

	if r.eagerRebuild {
		if err := r.Rebuild(); err != nil {
			return r, err
		}
	}
	return r, nil
}

func (r *Router) mustAdd(method, pattern string, handler HandlerFunc, topts ...compiler.TerminalOption) *Router {
	if _, err := r.Add(method, pattern, handler, topts...); err != nil {
		panic(err)
	}
	return r
}

// GET registers a GET route. It panics on a registration error, since
// routes are normally all registered at startup with literal pattern
// strings under the caller's control.
func (r *Router) GET(pattern string, handler HandlerFunc, topts ...compiler.TerminalOption) *Router {
	return r.mustAdd(http.MethodGet, pattern, handler, topts...)
}

// POST registers a POST route.
func (r *Router) POST(pattern string, handler HandlerFunc, topts ...compiler.TerminalOption) *Router {
	return r.mustAdd(http.MethodPost, pattern, handler, topts...)
}

// PUT registers a PUT route.
func (r *Router) PUT(pattern string, handler HandlerFunc, topts ...compiler.TerminalOption) *Router {
	return r.mustAdd(http.MethodPut, pattern, handler, topts...)
}

// PATCH registers a PATCH route.
func (r *Router) PATCH(pattern string, handler HandlerFunc, topts ...compiler.TerminalOption) *Router {
	return r.mustAdd(http.MethodPatch, pattern, handler, topts...)
}

// DELETE registers a DELETE route.
func (r *Router) DELETE(pattern string, handler HandlerFunc, topts ...compiler.TerminalOption) *Router {
	return r.mustAdd(http.MethodDelete, pattern, handler, topts...)
}

// HEAD registers a HEAD route explicitly. Most callers don't need this:
// ServeHTTP already falls back from HEAD to GET when no HEAD route matches.
func (r *Router) HEAD(pattern string, handler HandlerFunc, topts ...compiler.TerminalOption) *Router {
	return r.mustAdd(http.MethodHead, pattern, handler, topts...)
}

// OPTIONS registers an OPTIONS route.
func (r *Router) OPTIONS(pattern string, handler HandlerFunc, topts ...compiler.TerminalOption) *Router {
	return r.mustAdd(http.MethodOptions, pattern, handler, topts...)
}

// Rebuild forces eager (re)compilation of the automaton.
func (r *Router) Rebuild() error {
	start := time.Now()
	if err := r.engine.Rebuild(); err != nil {
		return err
	}
	count := len(r.engine.Terminals())
	r.observability.OnRebuild(count, time.Since(start))
	r.emit(DiagRebuild, "automaton rebuilt", map[string]any{"terminal_count": count})
	return nil
}

// Match rebuilds the automaton if stale, then walks it, invoking visitor
// for each terminal tagged at the accept node reached by path, in
// registration order, until one returns true.
func (r *Router) Match(path string, visitor compiler.MatchFunc) bool {
	if r.engine.Stale() {
		if err := r.Rebuild(); err != nil {
			r.logger.Error("automaton rebuild failed", "error", err)
			return false
		}
	}
	if r.engine.MaybeReject(path) {
		return false
	}
	a := r.engine.Snapshot()
	if a == nil {
		return false
	}
	return a.Match(path, visitor)
}

// dispatch matches path against terminals registered under method, invoking
// the winning handler. It reports whether a handler was invoked.
func (r *Router) dispatch(w http.ResponseWriter, req *http.Request, path, method string) bool {
	info := r.observability.OnMatchStart(method, path)
	start := time.Now()

	handled := r.Match(path, func(term *compiler.Terminal, captures []string) bool {
		entry, ok := term.Data.(*routeEntry)
		if !ok || entry.method != method {
			return false
		}
		ctx := &Context{Writer: w, Request: req, params: buildParams(term.Names, captures)}
		entry.handler(ctx)
		return true
	})

	r.observability.OnMatchEnd(info, handled, time.Since(start))
	return handled
}

func buildParams(names, captures []string) map[string]string {
	if len(names) == 0 {
		return nil
	}
	m := make(map[string]string, len(names))
	for i, name := range names {
		m[name] = captures[i]
	}
	return m
}

// ServeHTTP implements http.Handler, playing the role of the dispatcher
// that wraps the matching core: it strips the router's prefix, matches
// against the request method, falls back from HEAD to GET exactly once,
// and writes a 404 if nothing matched.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	if r.prefix != "" {
		if !strings.HasPrefix(path, r.prefix) {
			http.NotFound(w, req)
			return
		}
		path = strings.TrimPrefix(path, r.prefix)
		if path == "" {
			path = "/"
		}
	}

	if r.dispatch(w, req, path, req.Method) {
		return
	}
	if req.Method == http.MethodHead && r.dispatch(w, req, path, http.MethodGet) {
		return
	}
	http.NotFound(w, req)
}
