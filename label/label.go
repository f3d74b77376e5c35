package label

import "github.com/abclark/cycle-finder/internal/bitset"

// Label is a value of the algebra {⊥} ∪ 𝒫(V) from Monien's construction.
// The zero value is Bottom.
type Label struct {
	members bitset.Set
	hasSet  bool // false means ⊥; the zero value of Label is therefore Bottom
}

// Bottom is the distinguished "no qualifying set exists here" label (⊥,
// written LAMBDA in Monien's paper). It equals the zero value of Label.
var Bottom = Label{}

// Of wraps a members set as a non-⊥ Label.
func Of(members bitset.Set) Label {
	return Label{members: members, hasSet: true}
}

// IsBottom reports whether l is ⊥.
func (l Label) IsBottom() bool { return !l.hasSet }

// Members returns the underlying vertex set. Calling it on ⊥ is a logic
// invariant violation (the "label cardinality mismatch" family of bugs):
// callers must check IsBottom first.
func (l Label) Members() bitset.Set {
	if !l.hasSet {
		panic("label: Members called on Bottom")
	}
	return l.members
}

// Size returns |S| for a non-⊥ label, or -1 for ⊥.
func (l Label) Size() int {
	if !l.hasSet {
		return -1
	}
	return l.members.Count()
}

// DisjointFrom reports whether l is a Members set disjoint from t. ⊥ is
// never disjoint-qualifying, even when t is empty.
func (l Label) DisjointFrom(t bitset.Set) bool {
	if !l.hasSet {
		return false
	}
	return !l.members.Intersects(t)
}

// Intersection returns l ∩ T as a vertex set. Calling this on a ⊥ label
// is a programmer error and panics, since no caller in this module ever
// needs ⊥'s intersection — disjointness is always tested via DisjointFrom
// first.
func (l Label) Intersection(t bitset.Set) bitset.Set {
	if !l.hasSet {
		panic("label: Intersection called on Bottom")
	}
	return l.members.Intersection(t)
}

// WithMember returns a new Label equal to l ∪ {w}. ⊥ propagates: calling
// this on ⊥ returns ⊥ unchanged.
func (l Label) WithMember(w int) Label {
	if !l.hasSet {
		return Bottom
	}
	return Of(l.members.WithSet(w))
}

// Contains reports whether w is a member of l. ⊥ never contains anything.
func (l Label) Contains(w int) bool {
	if !l.hasSet {
		return false
	}
	return l.members.Test(w)
}
