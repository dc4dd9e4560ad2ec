// SPDX-License-Identifier: MIT
// Package: maxclique/fixtures

package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/maxclique/core"
)

const (
	minRandomRegularVertices = 1
	maxStubMatchingAttempts  = 1000
)

// RandomRegular builds an undirected d-regular simple graph on n
// vertices via stub-matching: each vertex contributes d stubs, the stub
// list is shuffled, and stubs are paired sequentially. A pairing that
// would introduce a self-loop or a duplicate edge is rejected and the
// whole shuffle retried, up to a bounded number of attempts.
func RandomRegular(n, d int, rng *rand.Rand) (*core.Graph, error) {
	if n < minRandomRegularVertices {
		return nil, fmt.Errorf("fixtures: RandomRegular(n=%d): %w", n, ErrTooFewVertices)
	}
	if d < 0 || d >= n {
		return nil, fmt.Errorf("fixtures: RandomRegular(d=%d) must be in [0,%d): %w", d, n, ErrInvalidDegree)
	}
	if (n*d)%2 != 0 {
		return nil, fmt.Errorf("fixtures: RandomRegular(n=%d,d=%d): n*d must be even: %w", n, d, ErrInvalidDegree)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("fixtures: RandomRegular: %w", err)
	}
	if d == 0 {
		return g, nil
	}

	stubCount := n * d
	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		seen := make(map[[2]int]bool, stubCount/2)
		ok := true
		for k := 0; k+1 < len(stubs) && ok; k += 2 {
			u, v := stubs[k], stubs[k+1]
			if u == v {
				ok = false
				break
			}
			key := [2]int{u, v}
			if u > v {
				key = [2]int{v, u}
			}
			if seen[key] {
				ok = false
				break
			}
			seen[key] = true
		}
		if !ok {
			continue
		}

		out, err := core.NewGraph(n)
		if err != nil {
			return nil, fmt.Errorf("fixtures: RandomRegular: %w", err)
		}
		for k := 0; k+1 < len(stubs); k += 2 {
			if err := out.AddEdge(stubs[k], stubs[k+1]); err != nil {
				return nil, fmt.Errorf("fixtures: RandomRegular: AddEdge(%d,%d): %w", stubs[k], stubs[k+1], err)
			}
		}

		return out, nil
	}

	return nil, fmt.Errorf("fixtures: RandomRegular(n=%d,d=%d): %w", n, d, ErrConstructFailed)
}
