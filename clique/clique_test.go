package clique_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/maxclique/clique"
	"github.com/katalvlaran/maxclique/core"
	"github.com/katalvlaran/maxclique/degeneracy"
)

func buildGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func countCliques(t *testing.T, g *core.Graph, hook clique.RecorderHook) int {
	t.Helper()
	ord, err := degeneracy.Order(g)
	require.NoError(t, err)
	res, err := clique.Run(g, ord, hook)
	require.NoError(t, err)

	return res.Count
}

// naiveMaximalCliqueCount is an independent, unpivoted, unordered
// Bron–Kerbosch reference used purely as a cross-validation oracle in
// tests; it deliberately shares no code with the package under test.
func naiveMaximalCliqueCount(t *testing.T, g *core.Graph) int {
	t.Helper()
	n := g.VertexCount()
	neigh := make([]map[int]int, n)
	for v := 0; v < n; v++ {
		neigh[v] = g.NeighborSet(v)
	}

	count := 0
	var bk func(r, p, x map[int]bool)
	bk = func(r, p, x map[int]bool) {
		if len(p) == 0 && len(x) == 0 {
			count++
			return
		}
		for v := range p {
			newR := make(map[int]bool, len(r)+1)
			for u := range r {
				newR[u] = true
			}
			newR[v] = true

			newP := make(map[int]bool)
			newX := make(map[int]bool)
			for u := range p {
				if _, ok := neigh[v][u]; ok {
					newP[u] = true
				}
			}
			for u := range x {
				if _, ok := neigh[v][u]; ok {
					newX[u] = true
				}
			}

			bk(newR, newP, newX)

			delete(p, v)
			x[v] = true
		}
	}

	p := make(map[int]bool, n)
	for v := 0; v < n; v++ {
		p[v] = true
	}
	bk(map[int]bool{}, p, map[int]bool{})

	return count
}

func TestRun_Triangle(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	assert.Equal(t, 1, countCliques(t, g, nil))
}

func TestRun_PathOfThree(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	assert.Equal(t, 2, countCliques(t, g, nil))
}

func TestRun_TwoDisjointEdges(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {2, 3}})
	assert.Equal(t, 2, countCliques(t, g, nil))
}

func TestRun_Bowtie(t *testing.T) {
	// Two triangles sharing vertex 2: {0,1,2} and {2,3,4}.
	g := buildGraph(t, 5, [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {2, 4}, {3, 4}})
	assert.Equal(t, 2, countCliques(t, g, nil))
}

func TestRun_K4(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	assert.Equal(t, 1, countCliques(t, g, nil))
}

func TestRun_EmptyGraph(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, countCliques(t, g, nil))
}

func TestRun_IsolatedVerticesEachCountAsOwnClique(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	assert.Equal(t, 3, countCliques(t, g, nil))
}

func TestRun_ZacharyKarateClub(t *testing.T) {
	edges := [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {0, 8}, {0, 10}, {0, 11},
		{0, 12}, {0, 13}, {0, 17}, {0, 19}, {0, 21}, {0, 31},
		{1, 2}, {1, 3}, {1, 7}, {1, 13}, {1, 17}, {1, 19}, {1, 21}, {1, 30},
		{2, 3}, {2, 7}, {2, 8}, {2, 9}, {2, 13}, {2, 27}, {2, 28}, {2, 32},
		{3, 7}, {3, 12}, {3, 13},
		{4, 6}, {4, 10},
		{5, 6}, {5, 10}, {5, 16},
		{6, 16},
		{8, 30}, {8, 32}, {8, 33},
		{9, 33},
		{13, 33},
		{14, 32}, {14, 33},
		{15, 32}, {15, 33},
		{18, 32}, {18, 33},
		{19, 33},
		{20, 32}, {20, 33},
		{22, 32}, {22, 33},
		{23, 25}, {23, 27}, {23, 29}, {23, 32}, {23, 33},
		{24, 25}, {24, 27}, {24, 31},
		{25, 31},
		{26, 29}, {26, 33},
		{27, 33},
		{28, 31}, {28, 33},
		{29, 32}, {29, 33},
		{30, 32}, {30, 33},
		{31, 32}, {31, 33},
		{32, 33},
	}
	g := buildGraph(t, 34, edges)
	want := naiveMaximalCliqueCount(t, g)
	require.Equal(t, 36, want, "naive oracle disagrees with the well-known count for this dataset")
	assert.Equal(t, 36, countCliques(t, g, nil))
}

func TestRun_RandomGraphsMatchNaiveOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 12
	allPairs := combin.Combinations(n, 2)

	for trial := 0; trial < 20; trial++ {
		perm := rng.Perm(len(allPairs))
		keep := len(allPairs) / 3
		edges := make([][2]int, 0, keep)
		for _, idx := range perm[:keep] {
			pair := allPairs[idx]
			edges = append(edges, [2]int{pair[0], pair[1]})
		}

		g := buildGraph(t, n, edges)
		want := naiveMaximalCliqueCount(t, g)
		got := countCliques(t, g, nil)
		assert.Equal(t, want, got, "trial %d: edges=%v", trial, edges)
	}
}

func TestRun_AdjacencySetsUnchangedAfterEnumeration(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {2, 4}, {3, 4}})
	before := make([]map[int]int, g.VertexCount())
	for v := 0; v < g.VertexCount(); v++ {
		before[v] = g.NeighborSet(v)
	}

	countCliques(t, g, nil)

	for v := 0; v < g.VertexCount(); v++ {
		assert.Equal(t, before[v], g.NeighborSet(v), "vertex %d adjacency set changed", v)
	}
}

func TestRun_IdempotentAcrossRepeatedRuns(t *testing.T) {
	g := buildGraph(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 5}, {5, 3}})
	first := countCliques(t, g, nil)
	second := countCliques(t, g.Clone(), nil)
	third := countCliques(t, g, nil)
	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
}

type spyHook struct {
	entries int
	exits   int
}

func (s *spyHook) Enter(parent int64, depth int, candidate int, r []int, xSize, pSize int, prunedByPivot bool) int64 {
	s.entries++

	return int64(s.entries)
}

func (s *spyHook) Exit(nodeID int64, cliques int) {
	s.exits++
}

func TestRun_RecorderDoesNotChangeCount(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {2, 4}, {3, 4}})
	without := countCliques(t, g, nil)

	hook := &spyHook{}
	with := countCliques(t, g.Clone(), hook)

	assert.Equal(t, without, with)
	assert.Equal(t, hook.entries, hook.exits, "every Enter must be paired with an Exit")
	assert.Greater(t, hook.entries, 0)
}
