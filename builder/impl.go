// SPDX-License-Identifier: MIT
//
// File: impl.go
// Role: topology constructor implementations.
//
// Contracts (shared):
//   - Vertices are added via vid(i) in ascending index order.
//   - Edges are emitted in a stable order (documented per constructor).
//   - Weight policy: fixtures are unweighted shells; every edge has weight 0.
//   - Only sentinel errors are returned; constructors never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isograph/core"
)

const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 2
	minStarNodes     = 3
	minTreeDepth     = 1
)

// Path returns a Constructor that builds an n-vertex path P_n:
// v0—v1—…—v{n-1}, edges emitted for i = 0..n-2. Requires n ≥ 1.
// Complexity: O(n)
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minPathNodes {
			return fmt.Errorf("Path(%d): %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(vid(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n-1; i++ {
			if _, err := g.AddEdge(vid(i), vid(i+1), 0); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n,
// edges emitted i → (i+1) mod n for i = 0..n-1. Requires n ≥ 3.
// Complexity: O(n)
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle(%d): %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(vid(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(vid(i), vid((i+1)%n), 0); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n,
// edges emitted in ascending (i, j) order for i < j. Requires n ≥ 2.
// Complexity: O(n²)
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete(%d): %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(vid(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(vid(i), vid(j), 0); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds the star S_{n-1}: hub v0 joined to
// v1..v{n-1}, edges emitted in ascending leaf order. Requires n ≥ 3.
// Complexity: O(n)
func Star(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minStarNodes {
			return fmt.Errorf("Star(%d): %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(vid(i)); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(vid(0), vid(i), 0); err != nil {
				return err
			}
		}

		return nil
	}
}

// Tree returns a Constructor that builds a complete binary tree of the
// given depth (2^depth − 1 vertices), parent i joined to children 2i+1 and
// 2i+2 in ascending parent order. Requires depth ≥ 1.
// Complexity: O(2^depth)
func Tree(depth int) Constructor {
	return func(g *core.Graph) error {
		if depth < minTreeDepth {
			return fmt.Errorf("Tree(%d): %w", depth, ErrTooFewVertices)
		}
		n := (1 << depth) - 1
		for i := 0; i < n; i++ {
			if err := g.AddVertex(vid(i)); err != nil {
				return err
			}
		}
		for i := 0; 2*i+1 < n; i++ {
			if _, err := g.AddEdge(vid(i), vid(2*i+1), 0); err != nil {
				return err
			}
			if 2*i+2 < n {
				if _, err := g.AddEdge(vid(i), vid(2*i+2), 0); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
