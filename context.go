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
	"encoding/json"
	"net/http"
)

// Context carries one request's state through its handler: the underlying
// http.ResponseWriter and *http.Request, and the placeholder values the
// automaton captured for the pattern that matched.
type Context struct {
	Writer  http.ResponseWriter
	Request *http.Request

	params map[string]string
}

// Param returns the named placeholder's captured value, or "" if the
// matched pattern has no placeholder by that name.
func (c *Context) Param(name string) string {
	return c.params[name]
}

// JSON writes v as a JSON response body with the given status code. It is
// a convenience wrapper, not a content-negotiation layer: callers wanting
// anything else write to c.Writer directly.
func (c *Context) JSON(status int, v any) error {
	c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.Writer.WriteHeader(status)
	return json.NewEncoder(c.Writer).Encode(v)
}

// HandlerFunc is the type every registered route handler must satisfy.
type HandlerFunc func(*Context)
