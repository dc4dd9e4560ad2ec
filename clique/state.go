package clique

import (
	"github.com/katalvlaran/maxclique/core"
	"github.com/katalvlaran/maxclique/degeneracy"
)

// sentinelPos marks a vertex as absent from the current vl/pos window.
const sentinelPos = -1

// engine holds the single shared vertex array (vl), its position map
// (pos), and the growing clique-under-construction (r) for one outer
// vertex's worth of recursion. A fresh engine-local vl/pos is rebuilt per
// outer vertex (§4.5); within that, engine is reused across the whole
// recursive descent, never reallocated.
type engine struct {
	g    *core.Graph
	ord  *degeneracy.Ordering
	vl   []int // shared array: X | P for the current outer vertex
	pos  []int // pos[v] = index of v in vl, or sentinelPos
	r    []int // current clique under construction
	hook RecorderHook
	next int64 // not read or written by the engine; node IDs come from hook.Enter
}

func newEngine(g *core.Graph, ord *degeneracy.Ordering, hook RecorderHook) *engine {
	n := g.VertexCount()
	pos := make([]int, n)
	for v := range pos {
		pos[v] = sentinelPos
	}
	return &engine{
		g:    g,
		ord:  ord,
		vl:   make([]int, 0, n),
		pos:  pos,
		r:    make([]int, 0, n),
		hook: hook,
	}
}

// initForOuter builds the initial X | P partition for outer vertex v:
// earlier-ranked neighbors go to X, later-ranked neighbors go to P. It
// lays them into vl, populates pos, and establishes the P-prefix
// adjacency convention for every vertex now in vl.
// Returns (xBegin, pBegin, eEnd) for the freshly built window.
func (e *engine) initForOuter(v int) (xBegin, pBegin, eEnd int) {
	e.vl = e.vl[:0]
	rank := e.ord.Rank

	for _, u := range e.g.Neighbors(v) {
		if rank[u] < rank[v] {
			e.vl = append(e.vl, u)
		}
	}
	pBegin = len(e.vl)
	for _, u := range e.g.Neighbors(v) {
		if rank[u] > rank[v] {
			e.vl = append(e.vl, u)
		}
	}
	eEnd = len(e.vl)
	xBegin = 0

	for i, u := range e.vl {
		e.pos[u] = i
	}

	for _, u := range e.vl {
		e.partitionPrefix(u, pBegin, eEnd)
	}

	return xBegin, pBegin, eEnd
}

// teardownForOuter clears pos for every vertex touched by initForOuter,
// so the next outer vertex starts from a clean sentinel map.
func (e *engine) teardownForOuter() {
	for _, u := range e.vl {
		e.pos[u] = sentinelPos
	}
}

// partitionPrefix permutes adj[u] in place so that every neighbor whose
// pos lies in [lo, hi) forms a contiguous prefix; the relative order
// within the prefix and within the remainder is unspecified. This is the
// unconditional, full-scan form used once per vertex by initForOuter;
// after a restrict step the enumerator uses partitionPrefixBounded.
// Complexity: O(deg(u)).
func (e *engine) partitionPrefix(u, lo, hi int) {
	adj := e.g.AdjMut(u)
	write := 0
	for read := 0; read < len(adj); read++ {
		w := adj[read]
		if e.pos[w] >= lo && e.pos[w] < hi {
			adj[write], adj[read] = adj[read], adj[write]
			write++
		}
	}
}

// countWindowNeighbors walks adj[u] from its start, relying on the
// P-prefix convention established by partitionPrefix: the scan stops at
// the first entry whose pos falls outside [lo, hi), since by convention
// all matching entries are clustered at the front.
// Complexity: O(1 + matches), not O(deg(u)).
func (e *engine) countWindowNeighbors(u, lo, hi int) int {
	adj := e.g.AdjMut(u)
	n := 0
	for _, w := range adj {
		if e.pos[w] < lo || e.pos[w] >= hi {
			break
		}
		n++
	}

	return n
}

// isWindowNeighbor reports whether c appears among u's window-prefix
// neighbors (same early-break convention as countWindowNeighbors).
func (e *engine) isWindowNeighbor(u, c, lo, hi int) bool {
	adj := e.g.AdjMut(u)
	for _, w := range adj {
		if e.pos[w] < lo || e.pos[w] >= hi {
			return false
		}
		if w == c {
			return true
		}
	}

	return false
}

// markWindowNeighbors walks adj[pivot]'s window-prefix and sets
// marked[pos[w]-lo] = true for each neighbor w found, again relying on
// the early-break P-prefix convention.
func (e *engine) markWindowNeighbors(pivot, lo, hi int, marked []bool) {
	adj := e.g.AdjMut(pivot)
	for _, w := range adj {
		p := e.pos[w]
		if p < lo || p >= hi {
			break
		}
		marked[p-lo] = true
	}
}
