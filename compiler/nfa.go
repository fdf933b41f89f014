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

// dollarByte is the byte value reserved for the synthetic end-of-input
// sentinel "$". Real NUL bytes in a matched path therefore interact with
// the automaton the same way the sentinel does; this is the documented
// trade-off for keeping the edge table at 256 entries instead of 257 (spec
// §3's "Synthetic characters" note accepts this as implementation-defined
// for inputs that contain a raw zero byte).
const dollarByte = 0

// tag is a (terminal, active placeholder) pair attached to an NFA or DFA
// node. placeholder is "" when the node is not inside any capture.
type tag struct {
	terminal    int32
	placeholder string
}

// nfaNode is one state of the NFA built from the registered patterns: a set
// of tags and, per byte value, zero or more successor node ids. Multiple
// successors for one byte are exactly the nondeterminism subset
// construction resolves; a freshly built single-pattern fragment never
// produces more than one successor per byte on its own (see addPattern).
type nfaNode struct {
	tags  []tag
	edges [256][]int32
}

func (n *nfaNode) addTag(t tag) error {
	for i, existing := range n.tags {
		if existing.terminal != t.terminal {
			continue
		}
		if existing == t {
			return nil
		}
		if existing.placeholder == "" {
			n.tags[i].placeholder = t.placeholder
			return nil
		}
		if t.placeholder == "" {
			return nil
		}
		if existing.placeholder != t.placeholder {
			return ErrConflictingPlaceholder
		}
		return nil
	}
	n.tags = append(n.tags, t)
	return nil
}

func (n *nfaNode) addEdge(b byte, to int32) {
	for _, existing := range n.edges[b] {
		if existing == to {
			return
		}
	}
	n.edges[b] = append(n.edges[b], to)
}

// rootEdge is one "^" transition out of the implicit start node: spec's
// synthetic start character never appears in the byte-indexed edge table
// because it only ever fires once, from node 0, before any byte of input is
// consumed. Keeping it as a side list instead of a 257th array slot avoids
// growing every node's edge table for a transition that is only ever taken
// from a single node.
type rootEdge struct {
	node int32
	tag  tag
}

// nfaGraph accumulates the NFA fragments for every registered pattern
// before determinize() folds them into a single DFA.
type nfaGraph struct {
	nodes []*nfaNode
	root  []rootEdge
}

func newNFAGraph() *nfaGraph {
	return &nfaGraph{}
}

func (g *nfaGraph) newNode() int32 {
	id := int32(len(g.nodes))
	g.nodes = append(g.nodes, &nfaNode{})
	return id
}

// addPattern builds the NFA fragment for one pattern following spec §4.1:
// an entry node reachable from the root via "^", one node per segment
// (self-loops for placeholders and the trailing wildcard, a single edge for
// each literal byte), and a final "$" edge into a freshly tagged accept
// node. It returns the placeholder names in declaration order.
func (g *nfaGraph) addPattern(pattern string, terminal int32) ([]string, error) {
	segments, names, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}

	entry := g.newNode()
	g.root = append(g.root, rootEdge{node: entry, tag: tag{terminal: terminal}})
	cur := entry

	for _, seg := range segments {
		switch seg.kind {
		case segLiteral:
			next := g.newNode()
			if err := g.nodes[next].addTag(tag{terminal: terminal}); err != nil {
				return nil, err
			}
			g.nodes[cur].addEdge(seg.b, next)
			cur = next

		case segPlaceholder:
			if err := g.nodes[cur].addTag(tag{terminal: terminal, placeholder: seg.name}); err != nil {
				return nil, err
			}
			for v := 1; v < 256; v++ {
				if v == '/' || v == dollarByte {
					continue
				}
				g.nodes[cur].addEdge(byte(v), cur)
			}

		case segWildcard:
			if err := g.nodes[cur].addTag(tag{terminal: terminal, placeholder: seg.name}); err != nil {
				return nil, err
			}
			for v := 1; v < 256; v++ {
				g.nodes[cur].addEdge(byte(v), cur)
			}
		}
	}

	accept := g.newNode()
	if err := g.nodes[accept].addTag(tag{terminal: terminal}); err != nil {
		return nil, err
	}
	g.nodes[cur].addEdge(dollarByte, accept)

	return names, nil
}
