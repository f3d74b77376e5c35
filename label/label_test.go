package label_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abclark/cycle-finder/internal/bitset"
	"github.com/abclark/cycle-finder/label"
)

func set(n int, members ...int) bitset.Set {
	s := bitset.New(n)
	for _, m := range members {
		s.Set(m)
	}
	return s
}

func TestBottomIsZeroValue(t *testing.T) {
	var l label.Label
	require.True(t, l.IsBottom())
	require.Equal(t, -1, l.Size())
}

func TestBottomNeverDisjoint(t *testing.T) {
	require.False(t, label.Bottom.DisjointFrom(bitset.New(4)))
}

func TestDisjointFrom(t *testing.T) {
	l := label.Of(set(8, 1, 2))
	require.True(t, l.DisjointFrom(set(8, 3, 4)))
	require.False(t, l.DisjointFrom(set(8, 2, 5)))
}

func TestWithMemberPropagatesBottom(t *testing.T) {
	require.True(t, label.Bottom.WithMember(3).IsBottom())
}

func TestWithMemberAddsElement(t *testing.T) {
	l := label.Of(set(8, 1)).WithMember(2)
	require.False(t, l.IsBottom())
	require.True(t, l.Contains(1))
	require.True(t, l.Contains(2))
	require.Equal(t, 2, l.Size())
}

func TestMembersPanicsOnBottom(t *testing.T) {
	require.Panics(t, func() { label.Bottom.Members() })
}

func TestIntersectionPanicsOnBottom(t *testing.T) {
	require.Panics(t, func() { label.Bottom.Intersection(bitset.New(4)) })
}
