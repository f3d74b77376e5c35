// Package label implements the label algebra {⊥} ∪ 𝒫(V): the value
// domain carried by representative-tree nodes in Monien's construction.
//
// A Label is either Bottom (⊥, "no qualifying set exists here") or a
// Members set, a bitset.Set representing a candidate interior-vertex set.
// ⊥ propagates through WithMember (⊥ ∪ {w} is ⊥); Intersection, which
// yields a plain vertex set rather than a Label, panics on ⊥. The boolean
// query DisjointFrom treats ⊥ as never disjoint-qualifying, even against
// an empty query set.
package label
