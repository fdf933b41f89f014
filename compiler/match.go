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

// MatchFunc is called once per terminal tag found at the accept node for a
// matched path, in registration order, with the placeholder captures for
// that terminal. Returning true stops the walk and Match reports success;
// returning false asks Match to keep trying the remaining terminals at that
// node (used by the router to skip a terminal whose HTTP method does not
// match, per spec §6 item 2(i)).
type MatchFunc func(t *Terminal, captures []string) bool

// Match walks text byte by byte from the start node, follows the "$"
// transition once the input is exhausted, and visits each terminal tagged
// at the resulting accept node in order, per spec §4.4. It reports whether
// any visited terminal returned true from fn.
func (a *Automaton) Match(text string, fn MatchFunc) bool {
	cur := int32(0)
	for i := 0; i < len(text); i++ {
		next := a.edges[cur][text[i]]
		if next == none {
			return false
		}
		cur = next
	}

	final := a.edges[cur][dollarByte]
	if final == none {
		return false
	}

	rng := a.tagRanges[final]
	for i := rng[0]; i < rng[1]; i++ {
		t := a.tags[i]
		term, ok := a.terminals[t.terminal]
		if !ok {
			continue
		}
		captures, ok := extract(a, text, term)
		if !ok {
			continue
		}
		if !term.satisfiesConstraints(captures) {
			continue
		}
		if fn(term, captures) {
			return true
		}
	}
	return false
}

// extract replays the walk from the start node, using term.nodeToPlaceholder
// to find the byte ranges where each of term's placeholders was active. It
// reports false if any capture would be empty, meaning this terminal does
// not accept the input rather than that matching failed outright.
func extract(a *Automaton, text string, term *Terminal) ([]string, bool) {
	if len(term.Names) == 0 {
		return nil, true
	}

	captures := make([]string, len(term.Names))
	cur := int32(0)
	active := int32(-1)
	start := 0

	for i := 0; i < len(text); i++ {
		v, ok := term.nodeToPlaceholder[cur]
		if !ok {
			v = -1
		}
		if v != active && active != -1 {
			captures[active] = text[start : i-1]
			active = -1
		}
		if v != -1 && active == -1 {
			active = v
			start = i
		}
		cur = a.edges[cur][text[i]]
	}

	if active != -1 {
		if v, ok := term.nodeToPlaceholder[cur]; ok && v == active {
			captures[active] = text[start:]
		} else {
			captures[active] = text[start : len(text)-1]
		}
	}

	for _, c := range captures {
		if c == "" {
			return nil, false
		}
	}
	return captures, true
}
