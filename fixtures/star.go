// SPDX-License-Identifier: MIT
// Package: maxclique/fixtures

package fixtures

import (
	"fmt"

	"github.com/katalvlaran/maxclique/core"
)

const minStarVertices = 2

// Star builds a star topology on n vertices: vertex 0 is the hub, and
// vertices 1..n-1 are leaves connected only to the hub. Every maximal
// clique is a single hub-leaf edge.
func Star(n int) (*core.Graph, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("fixtures: Star(n=%d): %w", n, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("fixtures: Star: %w", err)
	}

	for leaf := 1; leaf < n; leaf++ {
		if err := g.AddEdge(0, leaf); err != nil {
			return nil, fmt.Errorf("fixtures: Star: AddEdge(0,%d): %w", leaf, err)
		}
	}

	return g, nil
}
