package degeneracy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxclique/core"
	"github.com/katalvlaran/maxclique/degeneracy"
)

func buildPath(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}

	return g
}

func TestOrder_Empty(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	ord, err := degeneracy.Order(g)
	require.NoError(t, err)
	assert.Empty(t, ord.Order)
	assert.Empty(t, ord.Rank)
}

func TestOrder_IsPermutationAndInverse(t *testing.T) {
	g := buildPath(t, 6)
	ord, err := degeneracy.Order(g)
	require.NoError(t, err)
	require.Len(t, ord.Order, 6)

	seen := make(map[int]bool)
	for i, v := range ord.Order {
		assert.False(t, seen[v], "vertex %d emitted twice", v)
		seen[v] = true
		assert.Equal(t, i, ord.Rank[v])
		assert.Equal(t, v, ord.Order[ord.Rank[v]])
	}
	assert.Len(t, seen, 6)
}

func TestOrder_IsolatedVertices(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	ord, err := degeneracy.Order(g)
	require.NoError(t, err)
	assert.Len(t, ord.Order, 4)
}

// TestOrder_MinimalResidualDegree verifies the defining degeneracy-order
// invariant: at the moment vertex order[i] is emitted, its residual
// degree (counting only edges to vertices not yet emitted) is no greater
// than the residual degree of any vertex emitted later.
func TestOrder_MinimalResidualDegree(t *testing.T) {
	n := 7
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {4, 5}, {5, 6}, {2, 4}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	ord, err := degeneracy.Order(g)
	require.NoError(t, err)
	require.Len(t, ord.Order, n)

	emitted := make(map[int]bool, n)
	residualDegree := func(v int) int {
		d := 0
		for _, u := range g.Neighbors(v) {
			if !emitted[u] {
				d++
			}
		}
		return d
	}

	for i, v := range ord.Order {
		atEmission := residualDegree(v)
		for _, u := range ord.Order[i+1:] {
			assert.LessOrEqual(t, atEmission, residualDegree(u),
				"vertex %d emitted with residual degree %d, later vertex %d has smaller residual degree", v, atEmission, u)
		}
		emitted[v] = true
	}
}
