package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id int64, price float64, qty int) Line {
	return Line{ProductID: id, Name: "p", Price: price, Quantity: qty}
}

func TestAddMergesSameProduct(t *testing.T) {
	var c Cart
	c.Add(line(1, 20, 2))
	c.Add(line(1, 20, 3))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, c.Count())
}

func TestSubtotalTracksEverySequenceOfMutations(t *testing.T) {
	var c Cart
	check := func() {
		var want float64
		for _, l := range c.Lines() {
			want += l.Price * float64(l.Quantity)
		}
		assert.InDelta(t, want, c.Subtotal(), 1e-9)
	}

	c.Add(line(1, 20, 2))
	check()
	c.Add(line(2, 15, 1))
	check()
	c.UpdateQuantity(1, 5)
	check()
	c.Remove(2)
	check()
	c.UpdateQuantity(1, 1)
	check()
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	var c Cart
	c.Add(line(1, 10, 2))
	c.Add(line(2, 5, 1))

	c.UpdateQuantity(1, 0)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, int64(2), c.Lines()[0].ProductID)

	c.UpdateQuantity(2, -3)
	assert.True(t, c.Empty())
}

func TestRemoveUnknownProductIsNoop(t *testing.T) {
	var c Cart
	c.Add(line(1, 10, 1))
	c.Remove(42)
	assert.Len(t, c.Lines(), 1)
}

func TestClearResetsTotals(t *testing.T) {
	var c Cart
	c.Add(line(1, 20, 2))
	c.Add(line(2, 15, 1))
	c.Clear()

	assert.Equal(t, 0, c.Count())
	assert.Zero(t, c.Subtotal())
	assert.True(t, c.Empty())
}

func TestTwoLineScenario(t *testing.T) {
	// A: price 20 qty 2, B: price 15 qty 1 -> subtotal 55.00
	var c Cart
	c.Add(line(1, 20, 2))
	c.Add(line(2, 15, 1))
	assert.InDelta(t, 55.0, c.Subtotal(), 1e-9)
	assert.Equal(t, 3, c.Count())
}

func TestStoreIsolatesOwners(t *testing.T) {
	s := NewStore()
	s.Add("user:1", line(1, 20, 2))
	s.Add("user:2", line(1, 20, 1))

	assert.Equal(t, 2, s.Count("user:1"))
	assert.Equal(t, 1, s.Count("user:2"))

	s.Clear("user:1")
	assert.True(t, s.Empty("user:1"))
	assert.Equal(t, 1, s.Count("user:2"))
}
