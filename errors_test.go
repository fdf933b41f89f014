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
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationErrorsAreDistinguishable(t *testing.T) {
	r := MustNew()

	_, err := r.Add(http.MethodGet, "", func(c *Context) {})
	assert.True(t, errors.Is(err, ErrEmptyPattern))

	_, err = r.Add(http.MethodGet, "/:a/:a", func(c *Context) {})
	assert.True(t, errors.Is(err, ErrDuplicatePlaceholderName))

	_, err = r.Add(http.MethodGet, "/a*/b", func(c *Context) {})
	assert.True(t, errors.Is(err, ErrWildcardNotFinal))
}
