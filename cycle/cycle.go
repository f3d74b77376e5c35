package cycle

import (
	longpath "github.com/abclark/cycle-finder"
	"github.com/abclark/cycle-finder/graph"
)

// Find looks for one simple directed cycle of length k in g: for every
// edge v -> u, query longpath.FindPaths(g, k-1) for the pair (u, v); a
// witness there closes into the cycle u -> ... -> v -> u.
//
// Returns the cycle's vertices in order, starting and ending at the same
// vertex (len(result) == k+1), and true — or (nil, false) if g has no
// simple cycle of length k.
func Find(g *graph.Graph, k int) ([]int, bool, error) {
	if k < 2 {
		return nil, false, ErrInvalidLength
	}
	if g == nil {
		return nil, false, longpath.ErrGraphNil
	}

	res, err := longpath.FindPaths(g, k-1)
	if err != nil {
		return nil, false, err
	}

	n := g.N()
	for v := 0; v < n; v++ {
		for _, u := range g.Neighbours(graph.Vertex(v)) { // edge v -> u
			interior, ok := res.Witness(u, v)
			if !ok {
				continue
			}
			order, ok := reconstructPath(g, u, interior, v)
			if !ok {
				continue
			}
			return append(order, u), true, nil
		}
	}
	return nil, false, nil
}

// reconstructPath orders members into a simple path start -> ... -> end
// over g's edges, by backtracking search. Turning a witness set into an
// ordered walk via edge lookups is a client-side concern, not part of the
// core search; members is small (k-2 vertices for a length-k cycle), so
// exhaustive backtracking is appropriate for the fixed-parameter regime
// this algorithm targets.
func reconstructPath(g *graph.Graph, start int, members []int, end int) ([]int, bool) {
	order := make([]int, 0, len(members)+1)
	order = append(order, start)
	remaining := append([]int(nil), members...)
	if !extend(g, start, remaining, end, &order) {
		return nil, false
	}
	return order, true
}

func extend(g *graph.Graph, cur int, remaining []int, end int, order *[]int) bool {
	if len(remaining) == 0 {
		if !g.HasEdge(cur, end) {
			return false
		}
		*order = append(*order, end)
		return true
	}
	for i, next := range remaining {
		if !g.HasEdge(cur, next) {
			continue
		}
		rest := make([]int, 0, len(remaining)-1)
		rest = append(rest, remaining[:i]...)
		rest = append(rest, remaining[i+1:]...)
		*order = append(*order, next)
		if extend(g, next, rest, end, order) {
			return true
		}
		*order = (*order)[:len(*order)-1]
	}
	return false
}
