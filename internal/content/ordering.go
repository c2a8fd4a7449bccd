// Package content implements the hierarchy and ordering rules shared
// by modules, lessons, and questions: append-at-max+1 defaulting,
// contiguous renumbering, collision detection, quiz attachment, and
// cascade-delete set computation.
//
// Everything here is a pure function over snapshots supplied by the
// caller. The package performs no I/O and holds no state; services
// fetch the sibling set, call in, and persist the result.
package content

import (
	"errors"
	"sort"

	"github.com/google/uuid"
)

// ErrUnknownSibling is returned by Reorder when the moved ID is not in
// the sibling set.
var ErrUnknownSibling = errors.New("moved entity is not among the siblings")

// Sibling is the minimal ordering view of an entity: its identity and
// its current ordinal position.
type Sibling struct {
	ID       uuid.UUID `json:"id"`
	OrderNum int       `json:"order_num"`
}

// NextOrder returns the default position for a new sibling:
// max(existing orders) + 1, or 1 when there are no siblings.
func NextOrder(siblings []Sibling) int {
	max := 0
	for _, s := range siblings {
		if s.OrderNum > max {
			max = s.OrderNum
		}
	}
	return max + 1
}

// Renumber returns the sibling set renumbered contiguously 1..N,
// preserving the current relative order. Deleting entities leaves gaps
// (e.g. [1,4] after removing 2 and 3); Renumber closes them.
func Renumber(siblings []Sibling) []Sibling {
	out := make([]Sibling, len(siblings))
	copy(out, siblings)
	sortSiblings(out)
	for i := range out {
		out[i].OrderNum = i + 1
	}
	return out
}

// Reorder moves one sibling to newPos (1-based, clamped to [1,N]) and
// returns the full set renumbered 1..N. A full renumbering, rather
// than a swap, is required because prior deletions may have left gaps.
func Reorder(siblings []Sibling, movedID uuid.UUID, newPos int) ([]Sibling, error) {
	ordered := make([]Sibling, len(siblings))
	copy(ordered, siblings)
	sortSiblings(ordered)

	idx := -1
	for i, s := range ordered {
		if s.ID == movedID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrUnknownSibling
	}

	if newPos < 1 {
		newPos = 1
	}
	if newPos > len(ordered) {
		newPos = len(ordered)
	}

	moved := ordered[idx]
	ordered = append(ordered[:idx], ordered[idx+1:]...)
	ordered = append(ordered[:newPos-1], append([]Sibling{moved}, ordered[newPos-1:]...)...)

	for i := range ordered {
		ordered[i].OrderNum = i + 1
	}
	return ordered, nil
}

// OrderCollision reports whether candidateOrder is already occupied by
// a sibling other than self. Collisions are surfaced as a warning for
// lessons ("(occupied)" in the order dropdown) and never block the
// write.
func OrderCollision(siblings []Sibling, candidateOrder int, self uuid.UUID) bool {
	for _, s := range siblings {
		if s.ID != self && s.OrderNum == candidateOrder {
			return true
		}
	}
	return false
}

// sortSiblings orders by OrderNum, breaking ties by ID so the result
// is deterministic even when users have typed colliding orders.
func sortSiblings(s []Sibling) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].OrderNum != s[j].OrderNum {
			return s[i].OrderNum < s[j].OrderNum
		}
		return s[i].ID.String() < s[j].ID.String()
	})
}
