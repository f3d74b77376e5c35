package reptree

import "github.com/abclark/cycle-finder/label"

// noParent marks the root node, which has no incoming edge.
const noParent = -1

// node is one entry of a Tree's arena.
type node struct {
	lbl       label.Label
	parent    int   // index of parent node, or noParent for the root
	edgeLabel int   // vertex label on the incoming edge; meaningless for the root
	children  []int // child indices, one per element of lbl, ordered ascending by edge label
}

// Tree is a representative tree B(q, u, v, p): a rooted, depth-bounded
// arena of nodes carrying labels in {⊥} ∪ 𝒫(V).
type Tree struct {
	n     int // vertex-space capacity, for sizing edge-set bitsets
	nodes []node
}

// N returns the vertex-space capacity the tree was built over.
func (t *Tree) N() int { return t.n }

// Root returns the index of the root node (always 0).
func (t *Tree) Root() int { return 0 }

// Label returns the label carried by node idx.
func (t *Tree) Label(idx int) label.Label { return t.nodes[idx].lbl }

// RootLabel returns the root's label.
func (t *Tree) RootLabel() label.Label { return t.nodes[t.Root()].lbl }

// Children returns the child node indices of idx, ordered ascending by
// their incoming edge label.
func (t *Tree) Children(idx int) []int { return t.nodes[idx].children }

// EdgeLabel returns the vertex label carried by idx's incoming edge.
// Panics on the root, which has none.
func (t *Tree) EdgeLabel(idx int) int {
	if t.nodes[idx].parent == noParent {
		panic("reptree: root node has no incoming edge")
	}
	return t.nodes[idx].edgeLabel
}

// ChildFor returns the child of idx reached by the edge labelled e, and
// true, or (0, false) if idx has no such child. Query always descends
// through an edge labelled by a member of the node's own label, so a
// missing child for such an e signals a logic invariant
// violation: callers that expect one should panic rather than silently
// returning false.
func (t *Tree) ChildFor(idx, e int) (int, bool) {
	for _, c := range t.nodes[idx].children {
		if t.nodes[c].edgeLabel == e {
			return c, true
		}
	}
	return 0, false
}
