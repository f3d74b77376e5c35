package bitset

import "testing"

func TestSetClearTest(t *testing.T) {
	s := New(70) // exercises two words
	if !s.IsEmpty() {
		t.Fatal("fresh set must be empty")
	}
	s.Set(3)
	s.Set(64)
	s.Set(69)
	if !s.Test(3) || !s.Test(64) || !s.Test(69) {
		t.Fatal("Test did not see Set bits")
	}
	if s.Test(4) {
		t.Fatal("Test saw an unset bit")
	}
	s.Clear(64)
	if s.Test(64) {
		t.Fatal("Clear did not clear")
	}
	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}
}

func TestWithSetIsPure(t *testing.T) {
	s := New(8)
	s.Set(1)
	t2 := s.WithSet(2)
	if s.Test(2) {
		t.Fatal("WithSet mutated the receiver")
	}
	if !t2.Test(1) || !t2.Test(2) {
		t.Fatal("WithSet did not carry forward existing members")
	}
}

func TestIntersectionUnion(t *testing.T) {
	a := New(8)
	a.Set(1)
	a.Set(2)
	b := New(8)
	b.Set(2)
	b.Set(3)

	i := a.Intersection(b)
	if i.Elements()[0] != 2 || i.Count() != 1 {
		t.Fatalf("Intersection = %v, want [2]", i.Elements())
	}
	if !a.Intersects(b) {
		t.Fatal("Intersects false negative")
	}

	u := a.Union(b)
	want := []int{1, 2, 3}
	got := u.Elements()
	if len(got) != len(want) {
		t.Fatalf("Union = %v, want %v", got, want)
	}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("Union = %v, want %v", got, want)
		}
	}
}

func TestMinAndElements(t *testing.T) {
	s := New(130)
	if _, ok := s.Min(); ok {
		t.Fatal("Min on empty set reported ok")
	}
	s.Set(65)
	s.Set(5)
	s.Set(129)
	if m, ok := s.Min(); !ok || m != 5 {
		t.Fatalf("Min = %d,%v want 5,true", m, ok)
	}
	want := []int{5, 65, 129}
	got := s.Elements()
	if len(got) != 3 {
		t.Fatalf("Elements = %v, want %v", got, want)
	}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("Elements = %v, want %v", got, want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := New(8)
	a.Set(1)
	b := New(16)
	b.Set(1)
	if !a.Equal(b) {
		t.Fatal("Equal should ignore differing capacities with matching members")
	}
	b.Set(9)
	if a.Equal(b) {
		t.Fatal("Equal should detect an extra member beyond a's capacity")
	}
}

func TestCloneIndependent(t *testing.T) {
	a := New(8)
	a.Set(1)
	c := a.Clone()
	c.Set(2)
	if a.Test(2) {
		t.Fatal("Clone shares storage with the original")
	}
}
