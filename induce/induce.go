package induce

import (
	"github.com/abclark/cycle-finder/graph"
	"github.com/abclark/cycle-finder/internal/bitset"
	"github.com/abclark/cycle-finder/label"
	"github.com/abclark/cycle-finder/reptree"
)

// Build applies Algorithm 2 to the previous layer prev — trees
// B(q, w, v, p) for every ordered pair — and returns R, the trees
// B(newDepth, u, v, p+1) for every ordered pair, where newDepth = q-1.
//
// Per pair (u, v): let N = Neighbours(u) \ {v}. If N is empty, R[(u,v)]
// is a single ⊥ node (the N(u) = {v} case folds into this, since removing
// v from N(u) leaves it empty). Otherwise the tree is built level by
// level up to depth newDepth, querying Algorithm 1 against prev[(w,v)]
// for each candidate w in ascending order and stopping at the first
// non-⊥ result (the same smallest-index tie-break Algorithm 1 itself
// uses propagates here, too).
func Build(g *graph.Graph, prev Layer, newDepth int) Layer {
	n := g.N()
	r := make(Layer, n*n)
	for u := 0; u < n; u++ {
		nbrs := g.Neighbours(graph.Vertex(u)) // self-loops already excluded by the graph adapter
		for v := 0; v < n; v++ {
			candidates := exclude(nbrs, v)
			if len(candidates) == 0 {
				r[Pair{u, v}] = reptree.MakeLeaf(n, label.Bottom)
				continue
			}
			b := reptree.NewBuilder(n, label.Bottom)
			labelNode(b, 0, 0, newDepth, bitset.New(n), u, v, candidates, prev)
			r[Pair{u, v}] = b.Build()
		}
	}
	return r
}

// labelNode computes the label of node idx at depth d (root-to-idx edge
// labels form L), relabels idx in place, and — if idx was labelled with a
// set S and d < maxDepth — attaches |S| children (one per element of S)
// and recurses to label each.
func labelNode(b *reptree.Builder, idx, d, maxDepth int, l bitset.Set, u, v int, candidates []int, prev Layer) {
	t := l.WithSet(u)
	var chosen label.Label
	for _, w := range candidates {
		if t.Test(w) {
			continue
		}
		tree, ok := prev[Pair{w, v}]
		if !ok {
			// A missing layer entry behaves as a ⊥ tree.
			continue
		}
		result := reptree.Query(tree, t)
		if result.IsBottom() {
			continue
		}
		chosen = result.WithMember(w)
		break
	}

	if chosen.IsBottom() {
		b.Relabel(idx, label.Bottom)
		return
	}
	b.Relabel(idx, chosen)
	if d >= maxDepth {
		return
	}
	for _, z := range chosen.Members().Elements() {
		child := b.AddChild(idx, z)
		labelNode(b, child, d+1, maxDepth, l.WithSet(z), u, v, candidates, prev)
	}
}

// exclude returns nbrs with x removed, preserving order. nbrs is never
// mutated; the graph adapter's Neighbours slice must not be clobbered.
func exclude(nbrs []int, x int) []int {
	out := make([]int, 0, len(nbrs))
	for _, w := range nbrs {
		if w != x {
			out = append(out, w)
		}
	}
	return out
}
