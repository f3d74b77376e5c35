package reptree

import (
	"github.com/abclark/cycle-finder/internal/bitset"
	"github.com/abclark/cycle-finder/label"
)

// MakeLeaf builds a one-node tree whose root carries l (possibly ⊥).
// Used both for the p=0 initial layer and for the N(u)=∅ base case of
// the inductive constructor.
func MakeLeaf(n int, l label.Label) *Tree {
	return &Tree{n: n, nodes: []node{{lbl: l, parent: noParent}}}
}

// Builder assembles a Tree top-down, mirroring the level-by-level
// construction of Algorithm 2: callers label a node, then add one child
// per element of that label before labelling the children in turn.
type Builder struct {
	t *Tree
}

// NewBuilder starts a Builder over a vertex space of size n, with the
// root initially labelled rootLabel.
func NewBuilder(n int, rootLabel label.Label) *Builder {
	return &Builder{t: &Tree{n: n, nodes: []node{{lbl: rootLabel, parent: noParent}}}}
}

// Relabel overwrites the label of an existing node. Used when Algorithm 2
// first creates a node optimistically and only later determines its label
// (or ⊥) after querying Algorithm 1 against every candidate neighbour.
func (b *Builder) Relabel(idx int, l label.Label) {
	b.t.nodes[idx].lbl = l
}

// AddChild appends a new child of parent, reached by the edge labelled e,
// and returns the new node's index. The new node starts labelled ⊥; the
// caller relabels it once its own label is known.
func (b *Builder) AddChild(parent, e int) int {
	idx := len(b.t.nodes)
	b.t.nodes = append(b.t.nodes, node{lbl: label.Bottom, parent: parent, edgeLabel: e})
	b.t.nodes[parent].children = append(b.t.nodes[parent].children, idx)
	return idx
}

// Build finalises the tree. The Builder must not be reused afterwards.
func (b *Builder) Build() *Tree { return b.t }

// EdgeSetTo returns L, the set of edge labels on the root-to-idx path.
// The root's edge set is ∅.
func (t *Tree) EdgeSetTo(idx int) bitset.Set {
	s := bitset.New(t.n)
	for cur := idx; t.nodes[cur].parent != noParent; cur = t.nodes[cur].parent {
		s.Set(t.nodes[cur].edgeLabel)
	}
	return s
}
