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

package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePatternNames(t *testing.T) {
	_, names, err := parsePattern("/a/:v1/b/:v2")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, names)
}

func TestParsePatternErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr error
	}{
		{"empty", "", ErrEmptyPattern},
		{"empty placeholder name", "/a/:/b", ErrMalformedPlaceholder},
		{"trailing colon", "/a/:", ErrMalformedPlaceholder},
		{"adjacent placeholders", "/:a:b", ErrAdjacentPlaceholders},
		{"placeholder then wildcard", "/:a*", ErrAdjacentPlaceholders},
		{"duplicate name", "/:id/:id", ErrDuplicatePlaceholderName},
		{"wildcard not final", "/a*/b", ErrWildcardNotFinal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parsePattern(tc.pattern)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParsePatternTooManyPlaceholders(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxPlaceholders+1; i++ {
		b.WriteString(":p")
		b.WriteByte(byte('a' + i/26))
		b.WriteByte(byte('a' + i%26))
		b.WriteByte('/')
	}
	_, _, err := parsePattern(b.String())
	assert.ErrorIs(t, err, ErrTooManyPlaceholders)
}

func TestParsePatternWildcardAlone(t *testing.T) {
	segs, names, err := parsePattern("*")
	require.NoError(t, err)
	assert.Empty(t, names)
	require.Len(t, segs, 1)
	assert.Equal(t, segWildcard, segs[0].kind)
}
