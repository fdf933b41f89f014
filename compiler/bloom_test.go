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
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fnvSum64(t *testing.T, s string) uint64 {
	t.Helper()
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func TestBloomFilterNoFalseNegatives(t *testing.T) {
	bf := NewBloomFilter(4096, 4)
	paths := []string{"/users", "/users/admin", "/health", "/metrics"}
	for _, p := range paths {
		bf.Add([]byte(p))
	}
	for _, p := range paths {
		assert.True(t, bf.Test([]byte(p)), "expected %q to test present", p)
	}
}

func TestBloomFilterRejectsObviousAbsence(t *testing.T) {
	bf := NewBloomFilter(4096, 4)
	bf.Add([]byte("/users"))
	assert.False(t, bf.Test([]byte("/definitely-not-added-xyz")))
}

func TestBloomFilterPrecomputedHashMatchesTest(t *testing.T) {
	bf := NewBloomFilter(1024, 3)
	bf.Add([]byte("/a/b/c"))

	h := fnvSum64(t, "/a/b/c")
	assert.Equal(t, bf.Test([]byte("/a/b/c")), bf.TestWithPrecomputedHash(h))
}
