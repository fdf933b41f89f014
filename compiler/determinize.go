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
	"sort"
	"strconv"
	"strings"
)

// none marks the absence of a transition in a resolved edge slot.
const none = int32(-1)

// workNode is a node in the graph determinize() operates on in place.
// Initially it is a verbatim copy of one nfaNode (a singleton set); as
// subset construction proceeds, newly appended workNodes represent the
// union of several original nodes reached simultaneously on some byte.
// Once a node has been popped off the work list and resolved, every one of
// its edge slots holds at most one id: it has become a true DFA node.
type workNode struct {
	tags  []tag
	edges [256][]int32
}

// determinize runs subset construction over the NFA built by nfaGraph,
// starting from the union of every pattern's entry node (the "^"
// successors of the implicit root), per spec §4.2. It returns the resolved
// node array and the id of the start node within it.
func determinize(g *nfaGraph) (nodes []*workNode, startID int32) {
	nodes = make([]*workNode, len(g.nodes))
	for i, n := range g.nodes {
		wn := &workNode{tags: append([]tag(nil), n.tags...)}
		for b := 0; b < 256; b++ {
			if len(n.edges[b]) > 0 {
				wn.edges[b] = append([]int32(nil), n.edges[b]...)
			}
		}
		nodes[i] = wn
	}

	setToID := make(map[string]int32)
	var worklist []int32

	rootMembers := make([]int32, 0, len(g.root))
	for _, re := range g.root {
		rootMembers = append(rootMembers, re.node)
	}
	rootMembers = dedupStable(rootMembers)

	startID = resolveMembers(rootMembers, &nodes, setToID, &worklist)
	if startID == none {
		// No terminals registered: manufacture an empty start node so
		// compact() always has a node 0 to walk from, even though it
		// has no tags and no outgoing edges.
		startID = int32(len(nodes))
		nodes = append(nodes, &workNode{})
	}

	visited := make([]bool, len(nodes))
	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if int(id) < len(visited) && visited[id] {
			continue
		}
		for int(id) >= len(visited) {
			visited = append(visited, false)
		}
		visited[id] = true

		n := nodes[id]
		for b := 0; b < 256; b++ {
			succ := dedupStable(n.edges[b])
			if len(succ) <= 1 {
				if len(succ) == 1 {
					n.edges[b] = []int32{succ[0]}
				} else {
					n.edges[b] = nil
				}
				continue
			}
			combined := resolveMembers(succ, &nodes, setToID, &worklist)
			n.edges[b] = []int32{combined}
			for int(combined) >= len(visited) {
				visited = append(visited, false)
			}
		}
	}

	return nodes, startID
}

// resolveMembers returns the node id representing the union of members,
// creating and registering a new combined node the first time a given set
// is seen. A single-member set is its own id; no combined node is created
// for it.
func resolveMembers(members []int32, nodes *[]*workNode, setToID map[string]int32, worklist *[]int32) int32 {
	if len(members) == 0 {
		return none
	}
	if len(members) == 1 {
		return members[0]
	}

	key := setKey(members)
	if id, ok := setToID[key]; ok {
		return id
	}

	id := int32(len(*nodes))
	combined := &workNode{}
	for _, m := range members {
		combined.tags = unionTagsStable(combined.tags, (*nodes)[m].tags)
		for b := 0; b < 256; b++ {
			combined.edges[b] = append(combined.edges[b], (*nodes)[m].edges[b]...)
		}
	}
	*nodes = append(*nodes, combined)
	setToID[key] = id
	*worklist = append(*worklist, id)
	return id
}

// unionTagsStable merges src into dst, preserving dst's existing order and
// appending newly seen tags in the order they occur in src. A tag pair
// already present (same terminal, same placeholder) is not duplicated; a
// tag whose terminal matches an existing entry but whose placeholder
// disagrees follows the same idempotent merge rule as nfaNode.addTag.
func unionTagsStable(dst, src []tag) []tag {
	for _, t := range src {
		idx := -1
		for i, d := range dst {
			if d.terminal == t.terminal {
				idx = i
				break
			}
		}
		if idx == -1 {
			dst = append(dst, t)
			continue
		}
		existing := dst[idx]
		if existing == t {
			continue
		}
		if existing.placeholder == "" {
			dst[idx].placeholder = t.placeholder
			continue
		}
		if t.placeholder == "" {
			continue
		}
		if existing.placeholder != t.placeholder {
			panic(ErrConflictingPlaceholder)
		}
	}
	return dst
}

// dedupStable removes duplicate ids, preserving the order of first
// occurrence. Registration order threads through this: the first time a
// terminal's node enters any union, it keeps its relative position in
// every later union built on top of it, which is what keeps the terminal
// tag array in registration order at the end of compaction.
func dedupStable(ids []int32) []int32 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int32]bool, len(ids))
	out := make([]int32, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// setKey builds a canonical cache key for a member set. Sorting here only
// affects cache-hit bookkeeping, not the order tags are unioned in (that
// comes from the caller's dedupStable order), so it has no bearing on the
// registration-order invariant.
func setKey(ids []int32) string {
	sorted := append([]int32(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var b strings.Builder
	for i, id := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(id), 10))
	}
	return b.String()
}
