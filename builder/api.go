// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: public entry points. BuildGraph orchestrates; the topology
// constructors are implemented in impl.go.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/isograph/core"
)

// ErrTooFewVertices indicates that a numeric parameter (n, depth) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// Constructor applies a deterministic graph mutation. Constructors validate
// parameters early, return sentinel errors rather than panicking, and emit
// vertices and edges in a stable order.
type Constructor func(g *core.Graph) error

// BuildGraph creates a new core.Graph with the given options and applies
// all constructors in order. The first constructor error is wrapped and
// returned immediately; no partial cleanup is attempted.
// Complexity: Σ cost of the constructors.
func BuildGraph(gopts []core.GraphOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	for _, c := range cons {
		if err := c(g); err != nil {
			return nil, fmt.Errorf("builder: BuildGraph: %w", err)
		}
	}

	return g, nil
}

// vid returns the fixture vertex ID for index i ("v0", "v1", …).
func vid(i int) string {
	return fmt.Sprintf("v%d", i)
}
