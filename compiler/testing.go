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

import "testing"

// BuildTestAutomaton registers patterns (each paired with an opaque data
// value so terminals are distinguishable in assertions) and returns the
// compiled Automaton, failing the test immediately on any registration or
// rebuild error. It exists so every _test.go file in this package and in
// the router package above it can get from a list of pattern strings to a
// ready-to-match Automaton in one line.
func BuildTestAutomaton(t *testing.T, patterns ...string) (*Automaton, []*Terminal) {
	t.Helper()

	e := NewEngine()
	terminals := make([]*Terminal, 0, len(patterns))
	for i, p := range patterns {
		term, err := e.AddTerminal(p, i)
		if err != nil {
			t.Fatalf("AddTerminal(%q): %v", p, err)
		}
		terminals = append(terminals, term)
	}
	if err := e.Rebuild(); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	return e.Snapshot(), terminals
}

// CollectMatch runs Match and returns the first terminal that accepted,
// its captures, and whether any terminal accepted at all. Tests that only
// care about the single winning terminal use this instead of writing the
// MatchFunc closure themselves every time.
func CollectMatch(a *Automaton, path string) (*Terminal, []string, bool) {
	var winner *Terminal
	var caps []string
	ok := a.Match(path, func(t *Terminal, captures []string) bool {
		winner = t
		caps = captures
		return true
	})
	return winner, caps, ok
}
