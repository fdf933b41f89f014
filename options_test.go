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
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithBloomFilterStillMatchesRegisteredRoutes(t *testing.T) {
	r := New("", WithBloomFilter(4096, 4))
	called := false
	r.GET("/health", func(c *Context) {
		called = true
		c.Writer.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithDiagnosticsReceivesRegistrationAndRebuildEvents(t *testing.T) {
	var kinds []DiagnosticKind
	r := New("", WithDiagnostics(DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		kinds = append(kinds, e.Kind)
	})))

	_, err := r.Add(http.MethodGet, "/a", func(c *Context) {})
	require.NoError(t, err)
	require.NoError(t, r.Rebuild())

	assert.Contains(t, kinds, DiagRouteRegistered)
	assert.Contains(t, kinds, DiagRebuild)
}

func TestWithEagerRebuildKeepsAutomatonFresh(t *testing.T) {
	r := New("", WithEagerRebuild(true))
	_, err := r.Add(http.MethodGet, "/a", func(c *Context) {})
	require.NoError(t, err)
	assert.False(t, r.engine.Stale())

	_, err = r.Add(http.MethodGet, "/b", func(c *Context) {})
	require.NoError(t, err)
	assert.False(t, r.engine.Stale())
}
