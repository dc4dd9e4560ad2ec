// SPDX-License-Identifier: MIT
// Package: maxclique/fixtures

package fixtures

import (
	"fmt"

	"github.com/katalvlaran/maxclique/core"
)

const minCycleVertices = 3

// Cycle builds the n-vertex simple cycle C_n: edges i -> (i+1)%n for
// i=0..n-1. Every maximal clique of C_n (n>=4) is a single edge; C_3 is
// itself a triangle (one maximal clique of size 3).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("fixtures: Cycle(n=%d): %w", n, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("fixtures: Cycle: %w", err)
	}

	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("fixtures: Cycle: AddEdge(%d,%d): %w", i, (i+1)%n, err)
		}
	}

	return g, nil
}
