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

import "hash/fnv"

// BloomFilter is a probabilistic set membership test with no false
// negatives: Test either says "definitely absent" or "maybe present".
//
// The automaton's own Match is already a full DFA walk and doesn't need a
// prefilter to be correct, but a bloom filter populated with every literal
// (placeholder-free, wildcard-free) registered pattern lets Router.Match
// reject an obviously-unregistered static path before paying for that walk.
// It is opt-in via WithBloomFilter; patterns containing a placeholder or
// wildcard are never added to it, since a bloom filter can only test exact
// byte strings.
type BloomFilter struct {
	bits  []uint64
	size  uint64
	seeds []uint64
}

// NewBloomFilter allocates a filter with room for size bits, using
// numHashFuncs independently seeded FNV-1a hashes.
func NewBloomFilter(size uint64, numHashFuncs int) *BloomFilter {
	bf := &BloomFilter{
		bits:  make([]uint64, (size+63)/64),
		size:  size,
		seeds: make([]uint64, numHashFuncs),
	}
	for i := 0; i < numHashFuncs; i++ {
		//nolint:gosec // G115: numHashFuncs is small (typically < 10), overflow impossible
		bf.seeds[i] = uint64(i + 1)
	}
	return bf
}

// hashWithSeed derives one of the filter's hash functions from a single
// precomputed base hash by xoring in a seed, rather than hashing the input
// once per seed.
func (bf *BloomFilter) hashWithSeed(baseHash, seed uint64) uint64 {
	return (baseHash ^ seed) % bf.size
}

// Add records data's membership.
func (bf *BloomFilter) Add(data []byte) {
	h := fnv.New64a()
	h.Write(data)
	baseHash := h.Sum64()
	for _, seed := range bf.seeds {
		pos := bf.hashWithSeed(baseHash, seed)
		bf.bits[pos/64] |= 1 << (pos % 64)
	}
}

// Test reports whether data might have been added. A false result is
// conclusive; a true result is not.
func (bf *BloomFilter) Test(data []byte) bool {
	h := fnv.New64a()
	h.Write(data)
	return bf.TestWithPrecomputedHash(h.Sum64())
}

// TestWithPrecomputedHash is Test for a caller that already has data's
// FNV-1a hash on hand and wants to skip recomputing it.
func (bf *BloomFilter) TestWithPrecomputedHash(baseHash uint64) bool {
	for _, seed := range bf.seeds {
		pos := bf.hashWithSeed(baseHash, seed)
		if bf.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}
