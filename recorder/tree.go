package recorder

// RootParent is the parent ID a real outer invocation is recorded
// with. It mirrors clique.RootParent; recorder does not import clique
// (Tree satisfies clique.RecorderHook structurally), so the sentinel is
// redeclared here and the two packages are kept in sync by convention.
const RootParent int64 = -1

// syntheticRootID and syntheticParentID are the CSV-only sentinel values
// of the synthetic row aggregating all outer roots.
const (
	syntheticRootID   int64 = -1
	syntheticParentID int64 = -2
)

// Node is one recorded recursive invocation.
type Node struct {
	NodeID           int64
	ParentID         int64
	Children         []int64
	CliquesInSubtree int
	CreationOrder    int64
	Depth            int
	CandidateVertex  int
	CurrentClique    []int
	XSize            int
	PSize            int
	PrunedByPivot    bool
}

// Tree accumulates every Enter/Exit pair reported during one clique.Run
// call. Nodes are stored densely by creation order, so NodeID doubles as
// a slice index.
type Tree struct {
	nodes []*Node
}

// NewTree returns an empty Tree ready to be passed as a clique.RecorderHook.
func NewTree() *Tree {
	return &Tree{}
}

// Enter records a new node and returns its freshly assigned ID. The R
// slice is defensively copied: the caller (clique.engine) reuses its
// backing array across the whole recursion.
func (t *Tree) Enter(parent int64, depth int, candidate int, r []int, xSize, pSize int, prunedByPivot bool) int64 {
	id := int64(len(t.nodes))
	n := &Node{
		NodeID:          id,
		ParentID:        parent,
		CreationOrder:   id,
		Depth:           depth,
		CandidateVertex: candidate,
		CurrentClique:   append([]int(nil), r...),
		XSize:           xSize,
		PSize:           pSize,
		PrunedByPivot:   prunedByPivot,
	}
	t.nodes = append(t.nodes, n)

	if parent >= 0 {
		p := t.nodes[parent]
		p.Children = append(p.Children, id)
	}

	return id
}

// Exit fills in the one field Enter could not have known: the subtree's
// clique count.
func (t *Tree) Exit(nodeID int64, cliques int) {
	t.nodes[nodeID].CliquesInSubtree = cliques
}

// Nodes returns every recorded node, real and shadow alike, in creation
// order.
func (t *Tree) Nodes() []*Node {
	return t.nodes
}

// Roots returns the real outer-root nodes (parent == RootParent),
// excluding any pivot-pruned shadow branch (whose parent is always a
// concrete, non-negative node ID).
func (t *Tree) Roots() []*Node {
	var roots []*Node
	for _, n := range t.nodes {
		if n.ParentID == RootParent {
			roots = append(roots, n)
		}
	}

	return roots
}

// TotalCliques sums CliquesInSubtree across the real roots only, which
// by construction equals the clique.Result.Count of the same run (shadow
// branches are never roots, so this never double-counts them).
func (t *Tree) TotalCliques() int {
	total := 0
	for _, n := range t.Roots() {
		total += n.CliquesInSubtree
	}

	return total
}

// Stats summarizes the recorded tree for the CLI's "-e" statistics
// block: total node count, how many were explored versus pivot-pruned
// shadow branches, the pruning ratio, the number of leaves (nodes with
// no recorded children), and the maximum depth reached.
func (t *Tree) Stats() (totalNodes, explored, pruned, leaves, maxDepth int, pruningRatio float64) {
	totalNodes = len(t.nodes)
	for _, n := range t.nodes {
		if n.PrunedByPivot {
			pruned++
		} else {
			explored++
		}
		if len(n.Children) == 0 {
			leaves++
		}
		if n.Depth > maxDepth {
			maxDepth = n.Depth
		}
	}
	if totalNodes > 0 {
		pruningRatio = float64(pruned) / float64(totalNodes)
	}

	return totalNodes, explored, pruned, leaves, maxDepth, pruningRatio
}
