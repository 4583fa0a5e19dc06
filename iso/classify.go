package iso

import (
	"fmt"

	"github.com/katalvlaran/isograph/core"
)

// Classify inspects a graph pair and assigns one topology category.
//
// Current behavior: always CategoryArbitrary. No structural detection of
// planarity or tree-ness is performed yet, even though the category
// enumeration anticipates it — this is a documented limitation, not a bug.
// Callers that already know their topology should use NewInspectorByType
// and assert the category themselves.
// Complexity: O(1)
func Classify(g1, g2 *core.Graph) TopologyCategory {
	return CategoryArbitrary
}

// validateSupported refuses graph kinds the exhaustive matcher cannot
// handle. The only disallowed kind today is the multigraph: a graph whose
// capability flags permit parallel edges between the same vertex pair.
// It must run before any comparator or inspector is constructed — the
// matcher's correctness assumptions (simple adjacency, no multiplicities)
// would silently produce wrong answers otherwise rather than erroring.
// Complexity: O(1)
func validateSupported(g1, g2 *core.Graph) error {
	for i, g := range []*core.Graph{g1, g2} {
		if g.Multigraph() {
			return fmt.Errorf("%w: graph%d permits parallel edges", ErrUnsupportedGraphType, i+1)
		}
	}

	return nil
}
