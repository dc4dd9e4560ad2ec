package clique

import (
	"github.com/katalvlaran/maxclique/core"
	"github.com/katalvlaran/maxclique/degeneracy"
)

// Run enumerates every maximal clique of g, driven by the degeneracy
// ordering ord: for each vertex v in ordering order, with X the
// earlier-ranked neighbors of v and P the later-ranked ones, count and/or
// record the maximal cliques extending {v}. This is the classic
// degeneracy-ordered Bron–Kerbosch outer loop (Eppstein, Löffler &
// Strash), which bounds the worst case to the graph's degeneracy.
//
// hook may be nil; when non-nil, every recursive invocation (including
// pivot-pruned shadow branches) is reported to it, but Result.Count is
// always the true count — recording never changes it.
func Run(g *core.Graph, ord *degeneracy.Ordering, hook RecorderHook) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ord == nil || len(ord.Order) != g.VertexCount() || len(ord.Rank) != g.VertexCount() {
		return nil, ErrOrderingMismatch
	}

	e := newEngine(g, ord, hook)
	total := 0

	for _, v := range ord.Order {
		xBegin, pBegin, eEnd := e.initForOuter(v)

		e.r = append(e.r, v)
		total += e.recurse(xBegin, pBegin, eEnd, 0, RootParent, NoCandidate, false)
		e.r = e.r[:len(e.r)-1]

		e.teardownForOuter()
	}

	return &Result{Count: total}, nil
}
