package content

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sib(order int) Sibling {
	return Sibling{ID: uuid.New(), OrderNum: order}
}

func orders(siblings []Sibling) []int {
	out := make([]int, len(siblings))
	for i, s := range siblings {
		out[i] = s.OrderNum
	}
	return out
}

func TestNextOrder(t *testing.T) {
	assert.Equal(t, 1, NextOrder(nil))
	assert.Equal(t, 1, NextOrder([]Sibling{}))
	assert.Equal(t, 4, NextOrder([]Sibling{sib(3), sib(1)}))
	// Gaps from deletions don't matter; only the max does.
	assert.Equal(t, 5, NextOrder([]Sibling{sib(1), sib(2), sib(4)}))
}

func TestRenumberClosesGaps(t *testing.T) {
	// A module had lessons at [1,2,4]; the lesson at 2 was deleted,
	// leaving [1,4]. Renumbering yields a contiguous [1,2].
	a, b := sib(1), sib(4)
	out := Renumber([]Sibling{b, a})
	require.Len(t, out, 2)
	assert.Equal(t, []int{1, 2}, orders(out))
	assert.Equal(t, a.ID, out[0].ID)
	assert.Equal(t, b.ID, out[1].ID)
}

func TestRenumberEmpty(t *testing.T) {
	assert.Empty(t, Renumber(nil))
}

func TestReorderContiguous(t *testing.T) {
	a, b, c, d := sib(1), sib(3), sib(5), sib(9)
	out, err := Reorder([]Sibling{a, b, c, d}, d.ID, 2)
	require.NoError(t, err)

	// 1..N, no gaps, no duplicates, moved entity at its target slot.
	assert.Equal(t, []int{1, 2, 3, 4}, orders(out))
	assert.Equal(t, a.ID, out[0].ID)
	assert.Equal(t, d.ID, out[1].ID)
	assert.Equal(t, b.ID, out[2].ID)
	assert.Equal(t, c.ID, out[3].ID)
}

func TestReorderClampsPosition(t *testing.T) {
	a, b := sib(1), sib(2)

	out, err := Reorder([]Sibling{a, b}, a.ID, 99)
	require.NoError(t, err)
	assert.Equal(t, b.ID, out[0].ID)
	assert.Equal(t, a.ID, out[1].ID)

	out, err = Reorder([]Sibling{a, b}, b.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, b.ID, out[0].ID)
}

func TestReorderUnknownSibling(t *testing.T) {
	_, err := Reorder([]Sibling{sib(1)}, uuid.New(), 1)
	assert.ErrorIs(t, err, ErrUnknownSibling)
}

func TestReorderDoesNotMutateInput(t *testing.T) {
	a, b := sib(4), sib(7)
	in := []Sibling{a, b}
	_, err := Reorder(in, b.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, in[0].OrderNum)
	assert.Equal(t, 7, in[1].OrderNum)
}

func TestOrderCollision(t *testing.T) {
	a, b := sib(1), sib(2)
	siblings := []Sibling{a, b}

	assert.True(t, OrderCollision(siblings, 2, uuid.New()))
	assert.False(t, OrderCollision(siblings, 3, uuid.New()))
	// An entity never collides with itself.
	assert.False(t, OrderCollision(siblings, 2, b.ID))
}
