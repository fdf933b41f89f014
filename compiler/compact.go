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

// compactTag is one (terminal, placeholder) pair as stored in the flat tag
// array shared by every node of a compacted Automaton. placeholder is -1
// when the tag carries no active capture (a plain literal accept, or a
// wildcard, which spec tags with an empty placeholder name).
type compactTag struct {
	terminal    int32
	placeholder int32
}

// Automaton is the dense, read-only form of a determinized pattern set:
// a flat array of 256-entry edge tables (byte 0 doubles as the "$"
// transition) plus a flat tag array sliced per node. Once built it never
// mutates; Engine.Rebuild swaps in a fresh one under Engine's mutex and
// every in-flight Match keeps using the Automaton it already captured, per
// spec §5's copy-on-write rebuild model.
type Automaton struct {
	edges     [][256]int32
	tagRanges [][2]int32
	tags      []compactTag
	terminals map[int32]*Terminal
}

// compact walks the resolved determinize() graph from its start node,
// assigns each reachable node a dense index (the start node always becomes
// index 0), and flattens its edges and tags into Automaton's arrays. It
// also rebuilds each Terminal's nodeToPlaceholder map from scratch, the
// bookkeeping extract() replays during matching.
func compact(nodes []*workNode, startID int32, terminals map[int32]*Terminal) *Automaton {
	for _, term := range terminals {
		term.nodeToPlaceholder = nil
	}

	oldToNew := map[int32]int32{startID: 0}
	order := []int32{startID}

	for i := 0; i < len(order); i++ {
		n := nodes[order[i]]
		for b := 0; b < 256; b++ {
			if len(n.edges[b]) == 0 {
				continue
			}
			succ := n.edges[b][0]
			if _, ok := oldToNew[succ]; !ok {
				oldToNew[succ] = int32(len(order))
				order = append(order, succ)
			}
		}
	}

	a := &Automaton{
		edges:     make([][256]int32, len(order)),
		tagRanges: make([][2]int32, len(order)),
		terminals: terminals,
	}
	for i := range a.edges {
		for b := range a.edges[i] {
			a.edges[i][b] = none
		}
	}

	for newID, old := range order {
		n := nodes[old]
		for b := 0; b < 256; b++ {
			if len(n.edges[b]) == 0 {
				continue
			}
			a.edges[newID][b] = oldToNew[n.edges[b][0]]
		}

		start := int32(len(a.tags))
		for _, t := range n.tags {
			placeholderIdx := int32(-1)
			if t.placeholder != "" {
				if term, ok := terminals[t.terminal]; ok {
					if idx, ok := term.nameIndex[t.placeholder]; ok {
						placeholderIdx = int32(idx)
						if term.nodeToPlaceholder == nil {
							term.nodeToPlaceholder = make(map[int32]int32)
						}
						term.nodeToPlaceholder[int32(newID)] = int32(idx)
					}
				}
			}
			a.tags = append(a.tags, compactTag{terminal: t.terminal, placeholder: placeholderIdx})
		}
		a.tagRanges[newID] = [2]int32{start, int32(len(a.tags))}
	}

	return a
}
