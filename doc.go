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

// Package router is a pattern-based HTTP request router built on a
// compiled deterministic finite automaton: every registered pattern is
// folded into one automaton that matches all of them in a single
// left-to-right pass of the request path, regardless of how many patterns
// are registered. See the compiler package for the automaton itself.
//
// # Patterns
//
// A pattern is a sequence of literal bytes, named placeholders (":name",
// matching one or more non-'/' bytes), and an optional trailing wildcard
// ("*", matching any suffix including the empty one):
//
//	r := router.MustNew()
//	r.GET("/users/:id", func(c *router.Context) {
//		c.JSON(http.StatusOK, map[string]string{"id": c.Param("id")})
//	})
//	r.GET("/static/*", serveStatic)
//
// # Lifecycle
//
// Add (and GET/POST/...) append terminals and mark the automaton stale;
// Match and ServeHTTP rebuild it lazily on the next call if needed, or
// WithEagerRebuild can make every Add rebuild synchronously. Once built,
// the automaton is immutable until the next registration, so concurrent
// Match calls never block each other.
package router
