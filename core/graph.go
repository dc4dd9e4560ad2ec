package core

import "fmt"

// VertexCount returns n, the number of vertices the Graph was constructed
// with. Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.n
}

// EdgeCount returns the number of undirected edges added so far (each
// {u,v} pair counted once regardless of how it was added). Complexity:
// O(1).
func (g *Graph) EdgeCount() int {
	return g.m
}

// AddEdge adds the undirected edge {u,v}, appending v to adj[u] and u to
// adj[v]. The caller is responsible for not introducing self-loops or
// duplicate edges (spec: "callers provide clean input").
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}

	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.m++

	return nil
}

// Neighbors returns the current neighbor slice of v. During enumeration
// this slice's order is transiently permuted (see AdjMut); callers that
// need a stable snapshot should copy it.
// Complexity: O(1) to obtain the slice header.
func (g *Graph) Neighbors(v int) []int {
	return g.adj[v]
}

// Degree returns len(Neighbors(v)).
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	return len(g.adj[v])
}

// SetNeighbors replaces v's neighbor slice wholesale. Used by the clique
// enumerator when an in-place restore changes the slice's length
// transiently (remove-then-reinsert) in a way that might rebind the
// slice header rather than mutate the existing backing array.
// Complexity: O(1).
func (g *Graph) SetNeighbors(v int, nb []int) {
	g.adj[v] = nb
}

// AdjMut returns the backing neighbor slice of v by reference, granting
// the caller permission to permute (but not resize in a way that changes
// membership) its contents in place. Only package clique is expected to
// call this; it is exported because clique is a sibling package, not a
// subpackage that could reach into core's internals otherwise.
// Complexity: O(1).
func (g *Graph) AdjMut(v int) []int {
	return g.adj[v]
}

// NeighborSet returns the neighbor set of v as a map, order-independent.
// Used by tests to assert that a vertex's adjacency set is unchanged
// after enumeration, without depending on slice order.
// Complexity: O(deg(v)).
func (g *Graph) NeighborSet(v int) map[int]int {
	set := make(map[int]int, len(g.adj[v]))
	for _, u := range g.adj[v] {
		set[u]++
	}

	return set
}

// Clone returns a deep copy of g, suitable for "run twice, compare"
// idempotence tests without one run's in-place permutations affecting
// the other's starting state.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	out := &Graph{n: g.n, m: g.m, adj: make([][]int, g.n)}
	for v := range g.adj {
		out.adj[v] = append([]int(nil), g.adj[v]...)
	}

	return out
}
