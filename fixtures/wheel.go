// SPDX-License-Identifier: MIT
// Package: maxclique/fixtures

package fixtures

import (
	"fmt"

	"github.com/katalvlaran/maxclique/core"
)

const minWheelVertices = 4 // outer rim C_{n-1} needs n-1 >= 3

// Wheel builds W_n = C_{n-1} + hub: an (n-1)-vertex outer rim cycle
// (vertices 0..n-2) plus a hub (vertex n-1) connected to every rim
// vertex. For n >= 5 every maximal clique is a triangle
// {hub, i, (i+1)%(n-1)}; W_4 is K_4, a single maximal clique of size 4.
func Wheel(n int) (*core.Graph, error) {
	if n < minWheelVertices {
		return nil, fmt.Errorf("fixtures: Wheel(n=%d): %w", n, ErrTooFewVertices)
	}

	rim := n - 1
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("fixtures: Wheel: %w", err)
	}

	for i := 0; i < rim; i++ {
		if err := g.AddEdge(i, (i+1)%rim); err != nil {
			return nil, fmt.Errorf("fixtures: Wheel: AddEdge(%d,%d): %w", i, (i+1)%rim, err)
		}
	}

	hub := rim
	for i := 0; i < rim; i++ {
		if err := g.AddEdge(hub, i); err != nil {
			return nil, fmt.Errorf("fixtures: Wheel: AddEdge(%d,%d): %w", hub, i, err)
		}
	}

	return g, nil
}
