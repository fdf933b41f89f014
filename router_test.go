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

func TestAddAndMatchLiteral(t *testing.T) {
	r := MustNew()
	called := false
	_, err := r.Add(http.MethodGet, "/health", func(c *Context) {
		called = true
		c.Writer.WriteHeader(http.StatusOK)
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlaceholderCapture(t *testing.T) {
	r := MustNew()
	var got string
	r.GET("/users/:id", func(c *Context) {
		got = c.Param("id")
		c.Writer.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "42", got)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMethodMismatchFallsThroughTo404(t *testing.T) {
	r := MustNew()
	r.GET("/users/:id", func(c *Context) {})

	req := httptest.NewRequest(http.MethodPost, "/users/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHeadFallsBackToGetOnce(t *testing.T) {
	r := MustNew()
	called := false
	r.GET("/users/:id", func(c *Context) {
		called = true
		c.Writer.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodHead, "/users/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnmatchedPathReturns404(t *testing.T) {
	r := MustNew()
	r.GET("/users/:id", func(c *Context) {})

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPrefixStripping(t *testing.T) {
	r := New("/api")
	called := false
	r.GET("/users", func(c *Context) {
		called = true
		c.Writer.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.True(t, called)

	req2 := httptest.NewRequest(http.MethodGet, "/other/users", nil)
	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, req2)
	assert.Equal(t, http.StatusNotFound, rec2.Code)
}

func TestAddRejectsNilHandler(t *testing.T) {
	r := MustNew()
	_, err := r.Add(http.MethodGet, "/a", nil)
	assert.ErrorIs(t, err, ErrNilHandler)
}

func TestAddRejectsMalformedPattern(t *testing.T) {
	r := MustNew()
	_, err := r.Add(http.MethodGet, "/a/:", func(c *Context) {})
	assert.ErrorIs(t, err, ErrMalformedPlaceholder)
}

func TestGETPanicsOnRegistrationError(t *testing.T) {
	r := MustNew()
	assert.Panics(t, func() {
		r.GET("/a/:", func(c *Context) {})
	})
}

func TestRegistrationOrderDeterminesPriority(t *testing.T) {
	r := MustNew()
	var order []string
	r.GET("/:v1/:v2", func(c *Context) { order = append(order, "p1") })
	r.GET("/a/:v3", func(c *Context) { order = append(order, "p2") })

	req := httptest.NewRequest(http.MethodGet, "/a/a", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Len(t, order, 1)
	assert.Equal(t, "p1", order[0])
}

func TestEagerRebuildAppliesImmediately(t *testing.T) {
	r := New("", WithEagerRebuild(true))
	_, err := r.Add(http.MethodGet, "/eager", func(c *Context) {})
	require.NoError(t, err)
	assert.False(t, r.engine.Stale())
}
