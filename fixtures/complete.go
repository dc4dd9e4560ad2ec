// SPDX-License-Identifier: MIT
// Package: maxclique/fixtures

package fixtures

import (
	"fmt"

	"github.com/katalvlaran/maxclique/core"
)

const minCompleteVertices = 1

// Complete builds the complete simple graph K_n: every pair {i,j}, i<j,
// is an edge. K_n's clique enumeration is the degenerate case of exactly
// one maximal clique spanning all n vertices.
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("fixtures: Complete(n=%d): %w", n, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("fixtures: Complete: %w", err)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("fixtures: Complete: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}
