package degeneracy

import "github.com/katalvlaran/maxclique/core"

// Ordering is the result of Order: order[i] is the vertex emitted at
// position i, and rank is its inverse (rank[order[i]] == i for all i).
type Ordering struct {
	Order []int
	Rank  []int
}

// bucketQueue is an intrusive doubly linked list of buckets, one per
// residual degree, supporting O(1) insertion and removal.
type bucketQueue struct {
	head []int // head[d] is the first vertex in bucket d, or -1
	next []int // next[v] is the vertex after v in its bucket, or -1
	prev []int // prev[v] is the vertex before v in its bucket, or -1
}

func newBucketQueue(maxDeg, n int) *bucketQueue {
	q := &bucketQueue{
		head: make([]int, maxDeg+1),
		next: make([]int, n),
		prev: make([]int, n),
	}
	for d := range q.head {
		q.head[d] = -1
	}

	return q
}

func (q *bucketQueue) push(v, d int) {
	q.prev[v] = -1
	q.next[v] = q.head[d]
	if q.head[d] != -1 {
		q.prev[q.head[d]] = v
	}
	q.head[d] = v
}

func (q *bucketQueue) remove(v, d int) {
	if q.prev[v] != -1 {
		q.next[q.prev[v]] = q.next[v]
	} else {
		q.head[d] = q.next[v]
	}
	if q.next[v] != -1 {
		q.prev[q.next[v]] = q.prev[v]
	}
}

// Order computes the degeneracy ordering of g: repeatedly remove a
// vertex of minimum residual degree and append it to the ordering.
// Tie-breaking among vertices of equal residual degree is unconstrained;
// this implementation resolves ties by picking the bucket's most
// recently pushed vertex, which does not affect clique-count
// correctness, only the shape of the recursion tree.
// Complexity: O(V+E) time, O(V) space.
func Order(g *core.Graph) (*Ordering, error) {
	n := g.VertexCount()
	order := make([]int, 0, n)
	if n == 0 {
		return &Ordering{Order: order, Rank: make([]int, 0)}, nil
	}

	deg := make([]int, n)
	emitted := make([]bool, n)
	maxDeg := 0
	for v := 0; v < n; v++ {
		deg[v] = g.Degree(v)
		if deg[v] > maxDeg {
			maxDeg = deg[v]
		}
	}

	q := newBucketQueue(maxDeg, n)
	for v := 0; v < n; v++ {
		q.push(v, deg[v])
	}

	d := 0
	for len(order) < n {
		for q.head[d] == -1 {
			d++
		}

		v := q.head[d]
		q.remove(v, d)
		order = append(order, v)
		emitted[v] = true

		for _, u := range g.Neighbors(v) {
			if emitted[u] {
				continue
			}
			old := deg[u]
			q.remove(u, old)
			deg[u] = old - 1
			q.push(u, old-1)
		}

		if d > 0 {
			d--
		}
	}

	rank := make([]int, n)
	for i, v := range order {
		rank[v] = i
	}

	return &Ordering{Order: order, Rank: rank}, nil
}
