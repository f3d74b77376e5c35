package induce

import "github.com/abclark/cycle-finder/reptree"

// Pair is an ordered vertex pair (u, v), the key of a layer dictionary.
type Pair struct {
	U, V int
}

// Layer maps each ordered vertex pair to its representative tree for one
// induction depth p.
type Layer map[Pair]*reptree.Tree
