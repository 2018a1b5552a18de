package texture

import "testing"

func TestFaceSetDeduplicates(t *testing.T) {
	s := NewFaceSet(8)

	s.Add(3)
	s.Add(5)
	s.Add(3)

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	want := []int{3, 5}
	for i, w := range want {
		if got := s.Indices()[i]; got != w {
			t.Errorf("Indices()[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestFaceSetIgnoresOutOfRange(t *testing.T) {
	s := NewFaceSet(4)

	s.Add(-1)
	s.Add(4)

	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestFaceSetAddAllIsBounded(t *testing.T) {
	s := NewFaceSet(6)

	s.Add(2)
	s.AddAll()
	s.AddAll()

	if s.Len() != 6 {
		t.Errorf("Len = %d, want 6", s.Len())
	}
}

func TestFaceSetClear(t *testing.T) {
	s := NewFaceSet(4)
	s.AddAll()

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", s.Len())
	}

	s.Add(1)
	if s.Len() != 1 {
		t.Errorf("Len after re-add = %d, want 1", s.Len())
	}
}
