// SPDX-License-Identifier: MIT
// Package: maxclique/fixtures

package fixtures

import (
	"fmt"

	"github.com/katalvlaran/maxclique/core"
)

const minPartitionSize = 1

// Bipartite builds the complete bipartite graph K_{m,n}: vertices
// 0..m-1 form the left partition, m..m+n-1 the right, and every
// cross-pair is an edge. Every maximal clique is a single cross edge
// (complete bipartite graphs are triangle-free for m,n >= 1).
func Bipartite(m, n int) (*core.Graph, error) {
	if m < minPartitionSize || n < minPartitionSize {
		return nil, fmt.Errorf("fixtures: Bipartite(m=%d,n=%d): %w", m, n, ErrTooFewVertices)
	}

	g, err := core.NewGraph(m + n)
	if err != nil {
		return nil, fmt.Errorf("fixtures: Bipartite: %w", err)
	}

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if err := g.AddEdge(i, m+j); err != nil {
				return nil, fmt.Errorf("fixtures: Bipartite: AddEdge(%d,%d): %w", i, m+j, err)
			}
		}
	}

	return g, nil
}
