package iso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/isograph/core"
	"github.com/katalvlaran/isograph/iso"
)

// constComparator returns a fixed verdict and counts invocations.
type constComparator struct {
	verdict bool
	calls   int
}

func (c *constComparator) Equivalent(_ string, _ *core.Graph, _ string, _ *core.Graph) bool {
	c.calls++

	return c.verdict
}

func TestChain_EmptyIsVacuouslyTrue(t *testing.T) {
	ch := iso.NewChain()
	assert.Equal(t, 0, ch.Len())
	assert.True(t, ch.Evaluate("a", nil, "b", nil))
}

func TestChain_AllMustAccept(t *testing.T) {
	yes1 := &constComparator{verdict: true}
	yes2 := &constComparator{verdict: true}
	ch := iso.NewChain(yes1, yes2)

	assert.True(t, ch.Evaluate("a", nil, "b", nil))
	assert.Equal(t, 1, yes1.calls)
	assert.Equal(t, 1, yes2.calls)
}

func TestChain_ShortCircuitsOnFirstRejection(t *testing.T) {
	no := &constComparator{verdict: false}
	never := &constComparator{verdict: true}
	ch := iso.NewChain(no, never)

	assert.False(t, ch.Evaluate("a", nil, "b", nil))
	assert.Equal(t, 1, no.calls)
	assert.Equal(t, 0, never.calls, "comparator after a rejection must not run")
}

func TestChain_EvaluationOrderIsConstructionOrder(t *testing.T) {
	var order []string
	mk := func(name string) iso.ComparatorFunc {
		return func(_ string, _ *core.Graph, _ string, _ *core.Graph) bool {
			order = append(order, name)

			return true
		}
	}
	ch := iso.NewChain(mk("first"))
	ch.Append(mk("second"))
	ch.Append(mk("third"))

	assert.True(t, ch.Evaluate("a", nil, "b", nil))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestChain_AppendNilIsNoOp(t *testing.T) {
	ch := iso.NewChain(nil, &constComparator{verdict: true}, nil)
	assert.Equal(t, 1, ch.Len())

	ch.Append(nil)
	assert.Equal(t, 1, ch.Len())
}

func TestChain_CloneIsolation(t *testing.T) {
	ch := iso.NewChain(&constComparator{verdict: true})
	cp := ch.Clone()

	ch.Append(&constComparator{verdict: false})
	assert.Equal(t, 2, ch.Len())
	assert.Equal(t, 1, cp.Len(), "clone must not see later appends")
	assert.True(t, cp.Evaluate("a", nil, "b", nil))
	assert.False(t, ch.Evaluate("a", nil, "b", nil))
}

func TestChain_NestsAsComparator(t *testing.T) {
	inner := iso.NewChain(&constComparator{verdict: true})
	outer := iso.NewChain(inner, &constComparator{verdict: true})
	assert.True(t, outer.Evaluate("a", nil, "b", nil))
}
