// SPDX-License-Identifier: MIT
// Package: maxclique/fixtures

package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/maxclique/core"
)

const (
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples an Erdős–Rényi-style graph on n vertices,
// including each of the n(n-1)/2 possible edges independently with
// probability p. Trial order is fixed (i asc, then j>i asc), so a fixed
// rng seed reproduces the same graph.
func RandomSparse(n int, p float64, rng *rand.Rand) (*core.Graph, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("fixtures: RandomSparse(n=%d): %w", n, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("fixtures: RandomSparse(p=%.6f): %w", p, ErrInvalidProbability)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("fixtures: RandomSparse: %w", err)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err := g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("fixtures: RandomSparse: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}
	}

	return g, nil
}
