package reptree

import (
	"github.com/abclark/cycle-finder/internal/bitset"
	"github.com/abclark/cycle-finder/label"
)

// Query is Algorithm 1: given a representative tree t and a query set T,
// extract a member of the family t encodes that is disjoint from T, or
// report ⊥ if none exists.
//
// Descent: at each node x with label S, if S = ⊥ report ⊥; if S ∩ T = ∅
// return S; otherwise descend through the child reached by the smallest
// element of S ∩ T and repeat. The smallest-index tie-break makes the
// choice of e deterministic and reproducible.
//
// Cost: O(p·q) — each step intersects an at-most-p label with T (O(p)
// with bitsets) and descends one level; depth is bounded by q.
func Query(t *Tree, query bitset.Set) label.Label {
	x := t.Root()
	for {
		s := t.Label(x)
		if s.IsBottom() {
			return label.Bottom
		}
		overlap := s.Intersection(query)
		if overlap.IsEmpty() {
			return s
		}
		e, ok := overlap.Min()
		if !ok {
			// overlap.IsEmpty() above already handles this; unreachable.
			return s
		}
		child, ok := t.ChildFor(x, e)
		if !ok {
			panic("reptree: node label contains an element with no matching child edge")
		}
		x = child
	}
}
