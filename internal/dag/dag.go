// SPDX-License-Identifier: MPL-2.0

// Package dag provides cycle detection over small string-keyed dependency graphs.
// It is shared by the consumable mixin and named mixin validators, which each build
// an independent graph from the "requires" field of their definitions.
package dag

import (
	"slices"
	"strings"
)

type (
	// Cycle is a closed path of node ids. The first id is repeated as the last
	// element, so a self-requirement A -> A is reported as ["A", "A"].
	Cycle []string

	// Graph is a directed graph keyed by node id. An edge from A to B means
	// "A requires B". Edges to nodes that were never added are ignored during
	// traversal, so callers may pass unfiltered requirement lists.
	Graph struct {
		// adjacency maps each node to its outgoing neighbors in insertion order.
		adjacency map[string][]string
		// nodeSet provides O(1) lookup for node existence.
		nodeSet map[string]bool
	}
)

// String renders the cycle as "a -> b -> a".
func (c Cycle) String() string {
	return strings.Join(c, " -> ")
}

// key returns the canonical form of the cycle used for deduplication: the
// rotation that starts at the smallest id, without the closing repeat.
func (c Cycle) key() string {
	return strings.Join(c.canonical()[:len(c)-1], "\x00")
}

// canonical rotates the cycle so that it starts (and ends) at its smallest id.
func (c Cycle) canonical() Cycle {
	if len(c) < 2 {
		return slices.Clone(c)
	}
	ring := c[:len(c)-1]
	start := 0
	for i, id := range ring {
		if id < ring[start] {
			start = i
		}
	}
	out := make(Cycle, 0, len(c))
	out = append(out, ring[start:]...)
	out = append(out, ring[:start]...)
	out = append(out, ring[start])
	return out
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
		nodeSet:   make(map[string]bool),
	}
}

// FromEdges builds a Graph from an id -> requirements mapping. Every key becomes
// a node; requirement targets that are not keys are dropped.
func FromEdges(edges map[string][]string) *Graph {
	g := New()
	for id := range edges {
		g.AddNode(id)
	}
	for id, deps := range edges {
		for _, dep := range deps {
			if g.nodeSet[dep] {
				g.adjacency[id] = append(g.adjacency[id], dep)
			}
		}
	}
	return g
}

// AddNode adds a node to the graph. If the node already exists, this is a no-op.
func (g *Graph) AddNode(id string) {
	g.nodeSet[id] = true
}

// AddEdge adds a directed edge from -> to. Both nodes are implicitly added.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], to)
}

// Has reports whether id is a node of the graph.
func (g *Graph) Has(id string) bool {
	return g.nodeSet[id]
}

// Nodes returns all node ids in sorted order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.nodeSet))
	for id := range g.nodeSet {
		nodes = append(nodes, id)
	}
	slices.Sort(nodes)
	return nodes
}

// Cycles runs a depth-first search from every node in sorted order and returns
// each detected cycle once, in canonical rotation (starting at its smallest id).
//
// Nodes that have been fully explored are never entered again, so the search is
// linear in the size of the graph; a cycle reachable from several start nodes is
// still reported a single time.
func (g *Graph) Cycles() []Cycle {
	s := &search{
		graph:   g,
		visited: make(map[string]bool, len(g.nodeSet)),
		onStack: make(map[string]int, len(g.nodeSet)),
		seen:    make(map[string]bool),
	}
	for _, id := range g.Nodes() {
		s.visit(id)
	}
	return s.cycles
}

// search holds the traversal state of a single Cycles call.
type search struct {
	graph   *Graph
	visited map[string]bool
	stack   []string
	// onStack maps a node currently on the path to its stack index.
	onStack map[string]int
	seen    map[string]bool
	cycles  []Cycle
}

func (s *search) visit(id string) {
	if idx, ok := s.onStack[id]; ok {
		cycle := make(Cycle, 0, len(s.stack)-idx+1)
		cycle = append(cycle, s.stack[idx:]...)
		cycle = append(cycle, id)
		s.record(cycle)
		return
	}
	if s.visited[id] {
		return
	}
	s.visited[id] = true
	s.onStack[id] = len(s.stack)
	s.stack = append(s.stack, id)

	for _, next := range s.graph.adjacency[id] {
		if s.graph.nodeSet[next] {
			s.visit(next)
		}
	}

	s.stack = s.stack[:len(s.stack)-1]
	delete(s.onStack, id)
}

func (s *search) record(c Cycle) {
	key := c.key()
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.cycles = append(s.cycles, c.canonical())
}
