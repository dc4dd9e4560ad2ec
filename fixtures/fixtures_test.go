package fixtures_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxclique/fixtures"
)

func TestComplete_DegreesAllNMinus1(t *testing.T) {
	g, err := fixtures.Complete(5)
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
	for v := 0; v < 5; v++ {
		assert.Equal(t, 4, g.Degree(v))
	}
}

func TestComplete_TooFew(t *testing.T) {
	_, err := fixtures.Complete(0)
	assert.ErrorIs(t, err, fixtures.ErrTooFewVertices)
}

func TestCycle_EachDegreeTwo(t *testing.T) {
	g, err := fixtures.Cycle(6)
	require.NoError(t, err)
	for v := 0; v < 6; v++ {
		assert.Equal(t, 2, g.Degree(v))
	}
	assert.Equal(t, 6, g.EdgeCount())
}

func TestStar_HubDegreeNMinus1(t *testing.T) {
	g, err := fixtures.Star(6)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Degree(0))
	for leaf := 1; leaf < 6; leaf++ {
		assert.Equal(t, 1, g.Degree(leaf))
	}
}

func TestWheel_HubConnectsToEveryRimVertex(t *testing.T) {
	g, err := fixtures.Wheel(5)
	require.NoError(t, err)
	hub := 4
	assert.Equal(t, 4, g.Degree(hub))
	for i := 0; i < 4; i++ {
		assert.Equal(t, 3, g.Degree(i)) // 2 rim neighbors + hub
	}
}

func TestBipartite_EdgeCountAndPartitionDegrees(t *testing.T) {
	g, err := fixtures.Bipartite(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 2, g.Degree(i))
	}
	for j := 3; j < 5; j++ {
		assert.Equal(t, 3, g.Degree(j))
	}
}

func TestRandomSparse_DeterministicForFixedSeed(t *testing.T) {
	g1, err := fixtures.RandomSparse(20, 0.3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	g2, err := fixtures.RandomSparse(20, 0.3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount())
	for v := 0; v < 20; v++ {
		assert.Equal(t, g1.NeighborSet(v), g2.NeighborSet(v))
	}
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	_, err := fixtures.RandomSparse(5, 1.5, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, fixtures.ErrInvalidProbability)
}

func TestRandomRegular_EveryVertexHasDegreeD(t *testing.T) {
	g, err := fixtures.RandomRegular(10, 3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	for v := 0; v < 10; v++ {
		assert.Equal(t, 3, g.Degree(v))
	}
}

func TestRandomRegular_RejectsOddProduct(t *testing.T) {
	_, err := fixtures.RandomRegular(5, 3, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, fixtures.ErrInvalidDegree)
}

func TestRandomRegular_ZeroDegreeIsIsolatedVertices(t *testing.T) {
	g, err := fixtures.RandomRegular(4, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
}
