package clique

// recurse is the pivoted Bron–Kerbosch step: choose a pivot maximizing
// |N(u) ∩ P|, branch only over P minus the pivot's neighbors, and move
// each branched candidate into X once its subtree returns. xBegin,
// pBegin, eEnd delimit the current X | P window inside e.vl; candidate is
// the vertex whose push onto e.r produced this invocation (NoCandidate
// for outer roots); prunedByPivot marks this specific invocation as a
// recorder-only shadow branch a real pivot would have skipped.
//
// Returns the number of maximal cliques in this invocation's subtree,
// computed honestly regardless of prunedByPivot (the recorder's
// cliques_in_subtree wants the true count); it is the caller's
// responsibility never to fold a shadow branch's return value into the
// real running total (see explorePrunedShadows).
func (e *engine) recurse(xBegin, pBegin, eEnd, depth int, parentID int64, candidate int, prunedByPivot bool) int {
	var nodeID int64
	if e.hook != nil {
		nodeID = e.hook.Enter(parentID, depth, candidate, e.r, pBegin-xBegin, eEnd-pBegin, prunedByPivot)
	}

	// Base case: R is maximal only when P and X are both empty
	// (xBegin==pBegin==eEnd). xBegin==pBegin alone (P empty, X
	// non-empty) means R only extends a clique reported along some other
	// path; such a call falls through, finds no candidates, and returns
	// 0, so it is not double-counted.
	if xBegin == pBegin && pBegin == eEnd {
		if e.hook != nil {
			e.hook.Exit(nodeID, 1)
		}

		return 1
	}

	// Pivot selection: argmax over X∪P of |N(u) ∩ P|.
	pivot := -1
	bestDeg := -1
	for i := xBegin; i < eEnd; i++ {
		u := e.vl[i]
		d := e.countWindowNeighbors(u, pBegin, eEnd)
		if d > bestDeg {
			bestDeg = d
			pivot = u
		}
	}

	// Candidate set: P \ N(pivot). Candidates adjacent to the pivot are
	// pruned from real branching but retained for optional shadow
	// exploration.
	pivotNeigh := make([]bool, eEnd-pBegin)
	e.markWindowNeighbors(pivot, pBegin, eEnd, pivotNeigh)

	candidates := make([]int, 0, eEnd-pBegin)
	prunedCandidates := make([]int, 0, eEnd-pBegin)
	for i := pBegin; i < eEnd; i++ {
		u := e.vl[i]
		if pivotNeigh[i-pBegin] {
			prunedCandidates = append(prunedCandidates, u)
		} else {
			candidates = append(candidates, u)
		}
	}

	total := 0
	consumed := 0
	for _, c := range candidates {
		numX, numP := e.restrict(c, xBegin, pBegin, eEnd)

		childXBegin := pBegin - numX
		childEEnd := pBegin + numP
		for i := childXBegin; i < childEEnd; i++ {
			e.partitionPrefixBounded(e.vl[i], pBegin, childEEnd, pBegin, eEnd)
		}

		e.r = append(e.r, c)
		total += e.recurse(childXBegin, pBegin, childEEnd, depth+1, nodeID, c, false)
		e.r = e.r[:len(e.r)-1]

		for i := childXBegin; i < childEEnd; i++ {
			e.restoreAfterCandidate(e.vl[i], c, pBegin, eEnd)
		}

		// Move c from P into X: it sits wherever restrict() left it
		// (somewhere in [pBegin+numP, eEnd)); swap it down to the first
		// P slot, then grow X by one.
		cPos := e.pos[c]
		e.swapVL(pBegin, cPos)
		pBegin++
		consumed++
	}

	// End of loop: move every consumed candidate back into P, in reverse
	// order of consumption, restoring pBegin to its entry value.
	for i := 0; i < consumed; i++ {
		c := candidates[consumed-1-i]
		target := pBegin - i - 1
		e.swapVL(target, e.pos[c])
	}
	pBegin -= consumed

	if e.hook != nil {
		e.explorePrunedShadows(prunedCandidates, xBegin, pBegin, eEnd, depth, nodeID)
		e.hook.Exit(nodeID, total)
	}

	return total
}

// swapVL swaps vl[i] and vl[j] (which may be equal), keeping pos in sync.
func (e *engine) swapVL(i, j int) {
	if i == j {
		return
	}
	e.pos[e.vl[i]], e.pos[e.vl[j]] = j, i
	e.vl[i], e.vl[j] = e.vl[j], e.vl[i]
}

// restrict partitions X and P around neighbors of c: X-members adjacent
// to c are moved to the top of X (new range [pBegin-numX, pBegin)),
// P-members adjacent to c are moved to the bottom of P (new range
// [pBegin, pBegin+numP)). c itself is left wherever it lands among the
// non-matching remainder, deliberately excluded from its own child
// window.
func (e *engine) restrict(c, xBegin, pBegin, eEnd int) (numX, numP int) {
	for j := pBegin - 1; j >= xBegin; j-- {
		u := e.vl[j]
		if e.isWindowNeighbor(u, c, pBegin, eEnd) {
			numX++
			e.swapVL(j, pBegin-numX)
		}
	}

	for j := pBegin; j < eEnd; j++ {
		u := e.vl[j]
		if e.isWindowNeighbor(u, c, pBegin, eEnd) {
			e.swapVL(j, pBegin+numP)
			numP++
		}
	}

	return numX, numP
}

// restoreAfterCandidate undoes the P-prefix convention's temporary
// inclusion of c from u's adjacency list, moving c to the boundary of the
// parent window's [lo,hi) prefix so that the remaining genuine members
// stay contiguous for subsequent candidates' early-break scans.
func (e *engine) restoreAfterCandidate(u, c, lo, hi int) {
	adj := e.g.AdjMut(u)

	idx := -1
	for i, w := range adj {
		if w == c {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	copy(adj[idx:], adj[idx+1:])
	adj = adj[:len(adj)-1]

	insertAt := len(adj)
	for i, w := range adj {
		p := e.pos[w]
		if p < lo || p >= hi {
			insertAt = i
			break
		}
	}
	adj = append(adj, 0)
	copy(adj[insertAt+1:], adj[insertAt:len(adj)-1])
	adj[insertAt] = c

	e.g.SetNeighbors(u, adj)
}

// partitionPrefixBounded re-establishes the P-prefix convention for the
// child window [lo,hi) on adj[u], but only scans as far as the parent
// window [parentLo,parentHi) already guaranteed was contiguous; it stops
// at the first entry outside that bound rather than scanning to the end
// of adj[u].
func (e *engine) partitionPrefixBounded(u, lo, hi, parentLo, parentHi int) {
	adj := e.g.AdjMut(u)
	write := 0
	for read := 0; read < len(adj); read++ {
		w := adj[read]
		p := e.pos[w]
		if p < parentLo || p >= parentHi {
			break
		}
		if p >= lo && p < hi {
			adj[write], adj[read] = adj[read], adj[write]
			write++
		}
	}
}

// explorePrunedShadows re-explores each pivot-pruned candidate purely for
// recorder visualization: it snapshots the affected window of vl, pos,
// and adjacency lists, runs the same restrict-and-recurse choreography
// marked prunedByPivot=true, and restores the snapshot before the next
// candidate (and once more at the end). The recursion's return value is
// intentionally discarded: a pivot-pruned branch was never part of the
// real search, so its clique count must never reach the real total.
func (e *engine) explorePrunedShadows(pruned []int, xBegin, pBegin, eEnd, depth int, parentID int64) {
	if len(pruned) == 0 {
		return
	}

	savedVl := append([]int(nil), e.vl[xBegin:eEnd]...)
	savedPos := make(map[int]int, eEnd-xBegin)
	savedAdj := make(map[int][]int, eEnd-xBegin)
	for _, v := range savedVl {
		savedPos[v] = e.pos[v]
		savedAdj[v] = append([]int(nil), e.g.Neighbors(v)...)
	}

	restore := func() {
		copy(e.vl[xBegin:eEnd], savedVl)
		for v, p := range savedPos {
			e.pos[v] = p
		}
		for v, adj := range savedAdj {
			e.g.SetNeighbors(v, append([]int(nil), adj...))
		}
	}

	for _, c := range pruned {
		restore()

		numX, numP := e.restrict(c, xBegin, pBegin, eEnd)
		childXBegin := pBegin - numX
		childEEnd := pBegin + numP
		for i := childXBegin; i < childEEnd; i++ {
			e.partitionPrefixBounded(e.vl[i], pBegin, childEEnd, pBegin, eEnd)
		}

		e.r = append(e.r, c)
		e.recurse(childXBegin, pBegin, childEEnd, depth+1, parentID, c, true)
		e.r = e.r[:len(e.r)-1]
	}

	restore()
}
