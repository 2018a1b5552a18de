package texture

// FaceSet accumulates indices of faces whose texture data changed
// since the renderer last synced. Entries are deduplicated, so the set
// never grows past the mesh's face count.
type FaceSet struct {
	marks   []bool
	indices []int
}

// NewFaceSet creates a set for a mesh with the given number of faces.
func NewFaceSet(faces int) *FaceSet {
	return &FaceSet{marks: make([]bool, faces)}
}

// Add records one face. Out-of-range indices are ignored.
func (s *FaceSet) Add(face int) {
	if face < 0 || face >= len(s.marks) || s.marks[face] {
		return
	}
	s.marks[face] = true
	s.indices = append(s.indices, face)
}

// AddAll records every face.
func (s *FaceSet) AddAll() {
	for i := range s.marks {
		s.Add(i)
	}
}

// Len returns the number of recorded faces.
func (s *FaceSet) Len() int {
	return len(s.indices)
}

// Indices returns the recorded faces in insertion order. The slice is
// only valid until the next Clear.
func (s *FaceSet) Indices() []int {
	return s.indices
}

// Clear forgets all recorded faces.
func (s *FaceSet) Clear() {
	for _, f := range s.indices {
		s.marks[f] = false
	}
	s.indices = s.indices[:0]
}
