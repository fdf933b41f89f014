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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineStaleUntilRebuild(t *testing.T) {
	e := NewEngine()
	assert.Nil(t, e.Snapshot())

	_, err := e.AddTerminal("/a", 1)
	require.NoError(t, err)
	assert.True(t, e.Stale())

	require.NoError(t, e.Rebuild())
	assert.False(t, e.Stale())
	assert.NotNil(t, e.Snapshot())
}

func TestEngineRejectsNilHandler(t *testing.T) {
	e := NewEngine()
	_, err := e.AddTerminal("/a", nil)
	assert.ErrorIs(t, err, ErrNilHandler)
}

func TestEngineRejectsRegistrationErrorsWithoutMutatingGraph(t *testing.T) {
	e := NewEngine()
	_, err := e.AddTerminal("/a/:x*", 1)
	require.ErrorIs(t, err, ErrAdjacentPlaceholders)
	assert.Empty(t, e.Terminals())
}

func TestEngineBloomFilterGatesObviouslyAbsentPaths(t *testing.T) {
	e := NewEngine()
	e.EnableBloomFilter(4096, 4)
	_, err := e.AddTerminal("/health", 1)
	require.NoError(t, err)
	_, err = e.AddTerminal("/users/:id", 2)
	require.NoError(t, err)
	require.NoError(t, e.Rebuild())

	assert.False(t, e.MaybeReject("/health"))
	assert.True(t, e.MaybeReject("/definitely-not-registered-zzz"))
	// Placeholder patterns are never added to the bloom filter, so a path
	// that only a dynamic pattern would match must never be rejected by it.
	assert.False(t, e.MaybeReject("/users/7"))
}

func TestEngineConstraintRejectsUnknownName(t *testing.T) {
	e := NewEngine()
	term, err := e.AddTerminal("/users/:id", 1)
	require.NoError(t, err)
	err = WithConstraint("missing", nil)(term)
	assert.ErrorIs(t, err, ErrUnknownConstraintName)
}
