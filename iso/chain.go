package iso

import "github.com/katalvlaran/isograph/core"

// Chain composes an ordered sequence of EquivalenceComparators into one.
// Evaluation runs in construction order and short-circuits on the first
// rejection, so cheap discriminators placed early spare expensive ones.
//
// A Chain is itself an EquivalenceComparator, so chains nest.
type Chain struct {
	comparators []EquivalenceComparator
}

// NewChain builds a chain from the given comparators, preserving order.
// Nil entries are skipped, so optional comparators can be passed through
// without pre-filtering.
// Complexity: O(len(cs))
func NewChain(cs ...EquivalenceComparator) *Chain {
	ch := &Chain{comparators: make([]EquivalenceComparator, 0, len(cs))}
	for _, c := range cs {
		ch.Append(c)
	}

	return ch
}

// Append adds c to the end of the chain. Appending nil is a silent no-op:
// "no extra comparator" is a valid caller choice, not an error.
// Complexity: O(1) amortized.
func (ch *Chain) Append(c EquivalenceComparator) {
	if c == nil {
		return
	}
	ch.comparators = append(ch.comparators, c)
}

// Evaluate reports whether every comparator in the chain, evaluated in
// order, accepts the pair (a, b). It returns false at the first rejection
// without invoking later comparators. An empty chain is vacuously true.
// Complexity: O(len(chain)) comparator calls worst case.
func (ch *Chain) Evaluate(a string, ga *core.Graph, b string, gb *core.Graph) bool {
	for _, c := range ch.comparators {
		if !c.Equivalent(a, ga, b, gb) {
			return false // short-circuit: later comparators never run
		}
	}

	return true
}

// Equivalent makes Chain satisfy EquivalenceComparator.
func (ch *Chain) Equivalent(a string, ga *core.Graph, b string, gb *core.Graph) bool {
	return ch.Evaluate(a, ga, b, gb)
}

// Len returns the number of comparators in the chain.
func (ch *Chain) Len() int {
	return len(ch.comparators)
}

// Clone returns a chain with its own comparator slice. The factory hands
// clones to inspectors, so appending to a chain the caller retained cannot
// be observed by an in-flight inspection. Comparator values themselves are
// shared; they are stateless by contract.
// Complexity: O(len(chain))
func (ch *Chain) Clone() *Chain {
	cp := &Chain{comparators: make([]EquivalenceComparator, len(ch.comparators))}
	copy(cp.comparators, ch.comparators)

	return cp
}
