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

// Package compiler turns a set of registered patterns into a single
// deterministic automaton that matches any of them in one byte-at-a-time
// walk, independent of how many patterns are registered.
//
// # Architecture
//
// Compilation happens in three passes:
//
//  1. NFA construction (nfa.go): each pattern becomes its own fragment — one
//     node per literal byte, a self-looping node per named placeholder
//     (":name") or trailing wildcard ("*"), and a synthetic "$" edge into an
//     accept node once the pattern is exhausted.
//  2. Determinization (determinize.go): subset construction folds every
//     fragment's nondeterminism away, producing a graph where each node has
//     at most one successor per byte value.
//  3. Compaction (compact.go): the resolved graph is flattened into dense
//     arrays — Automaton — with no pointers between nodes, so the walk itself
//     never allocates; capture extraction allocates one slice per examined
//     terminal that has placeholders.
//
// # Matching
//
// Automaton.Match (match.go) walks the input once, follows the "$"
// transition, and visits every terminal tagged at the resulting node in
// registration order. For each terminal it replays the walk a second time
// using that terminal's node-to-placeholder map to slice out capture
// values — the only part of matching whose cost scales with the number of
// placeholders in the winning pattern rather than the size of the pattern
// set.
//
// # Bloom filter
//
// bloom.go provides an optional FNV-1a bloom filter populated with every
// literal (placeholder-free) registered pattern. Router.Match consults it
// before walking the automaton when enabled, to reject obviously-absent
// static paths without a byte-by-byte walk.
//
// # Engine
//
// Engine (engine.go) owns the mutable NFA graph, the registered Terminals,
// and the currently-built Automaton. AddTerminal mutates the graph and
// marks the Automaton stale; Rebuild recompiles it. Once built, an
// Automaton never mutates, so a Match in flight against one Automaton is
// unaffected by a concurrent Rebuild swapping in a new one.
//
// # Import boundary
//
// This package defines its own Terminal and TerminalOption types rather
// than importing the router package's handler type: the router package
// imports compiler, so compiler must not import anything that depends on
// router. Terminal.Data carries whatever the router needs as an opaque
// value.
package compiler
