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
	"sync"
	"sync/atomic"
)

// Engine owns the mutable NFA graph and the registered Terminals, and
// rebuilds the dense Automaton on demand. AddTerminal is the only write
// path into the NFA; Rebuild is the only write path into the Automaton.
// A Snapshot taken before a concurrent Rebuild remains valid and complete
// for as long as the caller holds it: rebuilding never mutates an
// Automaton already handed out, it only swaps the pointer Engine hands out
// next.
type Engine struct {
	mu              sync.Mutex
	graph           *nfaGraph
	terminals       map[int32]*Terminal
	order           []*Terminal
	nextIndex       int32
	stale           bool
	dynamicPrefixes []string

	automaton atomic.Pointer[Automaton]

	bloomSize    uint64
	bloomHashes  int
	bloomEnabled bool
	bloom        atomic.Pointer[BloomFilter]
}

// NewEngine returns an Engine with no registered terminals and no built
// Automaton. Match against it before the first Rebuild always fails.
func NewEngine() *Engine {
	return &Engine{
		graph:     newNFAGraph(),
		terminals: make(map[int32]*Terminal),
	}
}

// EnableBloomFilter turns on the literal-pattern bloom filter prefilter,
// rebuilding it from the currently-registered literal terminals on every
// subsequent Rebuild. size and numHashFuncs are passed straight through to
// NewBloomFilter.
func (e *Engine) EnableBloomFilter(size uint64, numHashFuncs int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bloomEnabled = true
	e.bloomSize = size
	e.bloomHashes = numHashFuncs
	e.stale = true
}

// AddTerminal registers one pattern, building its NFA fragment immediately
// and marking the Automaton stale. It returns the Terminal so the caller
// can attach TerminalOptions such as WithConstraint before the next
// Rebuild, or inspect Names afterward.
func (e *Engine) AddTerminal(pattern string, data any, opts ...TerminalOption) (*Terminal, error) {
	if data == nil {
		return nil, ErrNilHandler
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	index := e.nextIndex
	names, err := e.graph.addPattern(pattern, index)
	if err != nil {
		return nil, err
	}

	t := &Terminal{
		Pattern:   pattern,
		Data:      data,
		Names:     names,
		index:     index,
		nameIndex: make(map[string]int, len(names)),
	}
	for i, name := range names {
		t.nameIndex[name] = i
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	e.nextIndex++
	e.terminals[index] = t
	e.order = append(e.order, t)
	if prefix, ok := staticPrefix(pattern); ok {
		e.dynamicPrefixes = append(e.dynamicPrefixes, prefix)
	}
	e.stale = true
	return t, nil
}

// staticPrefix returns the literal bytes of pattern preceding its first
// placeholder or wildcard, and whether pattern has one at all. A path that
// doesn't start with any registered pattern's static prefix cannot be
// matched by that pattern, literal or not.
func staticPrefix(pattern string) (string, bool) {
	if i := strings.IndexAny(pattern, ":*"); i >= 0 {
		return pattern[:i], true
	}
	return "", false
}

// Stale reports whether Rebuild has not yet run since the last AddTerminal
// or EnableBloomFilter call.
func (e *Engine) Stale() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stale
}

// Terminals returns the registered terminals in registration order. The
// returned slice must not be mutated.
func (e *Engine) Terminals() []*Terminal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.order
}

// Rebuild determinizes and compacts the current NFA graph into a fresh
// Automaton, and rebuilds the bloom filter if enabled. It is idempotent: a
// Rebuild with no terminals added since the previous one still replaces the
// Automaton (spec's DiagRebuild fires either way), but produces an
// equivalent structure.
func (e *Engine) Rebuild() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	nodes, startID := determinize(e.graph)
	automaton := compact(nodes, startID, e.terminals)
	e.automaton.Store(automaton)

	if e.bloomEnabled {
		bf := NewBloomFilter(e.bloomSize, e.bloomHashes)
		for _, t := range e.order {
			if _, dynamic := staticPrefix(t.Pattern); !dynamic {
				bf.Add([]byte(t.Pattern))
			}
		}
		e.bloom.Store(bf)
	}

	e.stale = false
	return nil
}

// Snapshot returns the Automaton built by the most recent Rebuild, or nil
// if Rebuild has never run. It is safe to call concurrently with Rebuild
// and with AddTerminal.
func (e *Engine) Snapshot() *Automaton {
	return e.automaton.Load()
}

// MaybeReject reports whether path is definitely not matched by any
// registered terminal, using the bloom filter over literal (placeholder-free)
// patterns if one is enabled. It never rejects a path that starts with a
// registered dynamic pattern's static prefix, since the bloom filter has no
// way to know whether that pattern's placeholders would accept it. A false
// result is not conclusive either way; callers must still walk the
// Automaton.
func (e *Engine) MaybeReject(path string) bool {
	bf := e.bloom.Load()
	if bf == nil {
		return false
	}
	if bf.Test([]byte(path)) {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, prefix := range e.dynamicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}
