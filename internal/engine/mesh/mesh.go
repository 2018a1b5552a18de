// Package mesh provides paintable triangle meshes with dual texture
// mappings and procedural shape generation.
package mesh

import (
	"fmt"

	"github.com/footsoldier/chameleon/pkg/math"
)

// Mapping selects which UV set drives texturing.
type Mapping int

const (
	// MappingViewing is the static placeholder mapping used while the
	// camera moves.
	MappingViewing Mapping = iota
	// MappingDrawing is the camera-projected mapping used while paint
	// lands on the canvas.
	MappingDrawing
)

func (m Mapping) String() string {
	switch m {
	case MappingViewing:
		return "viewing"
	case MappingDrawing:
		return "drawing"
	default:
		return fmt.Sprintf("Mapping(%d)", int(m))
	}
}

// Face indexes three vertices forming a triangle, wound
// counter-clockwise seen from outside.
type Face [3]uint32

// FaceUV holds the texture coordinates of a face's three corners.
type FaceUV [3]math.Vec2

// UVSet holds one FaceUV per mesh face. Corners of shared vertices may
// carry different coordinates in different faces.
type UVSet []FaceUV

// Mesh holds triangle geometry plus the two texture mappings painting
// switches between. Vertex data is immutable after construction; only
// the UV sets and the active mapping change.
type Mesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	Faces     []Face

	viewing UVSet
	drawing UVSet
	active  Mapping
	uvDirty bool

	radius float32
}

// New builds a mesh from vertex data. Both UV sets are allocated with
// one entry per face and start zeroed.
func New(positions, normals []math.Vec3, faces []Face) (*Mesh, error) {
	if len(normals) != len(positions) {
		return nil, fmt.Errorf("mesh has %d normals for %d positions", len(normals), len(positions))
	}
	for i, f := range faces {
		for _, idx := range f {
			if int(idx) >= len(positions) {
				return nil, fmt.Errorf("face %d references vertex %d of %d", i, idx, len(positions))
			}
		}
	}

	var radius float32
	for _, p := range positions {
		if l := p.Length(); l > radius {
			radius = l
		}
	}

	return &Mesh{
		Positions: positions,
		Normals:   normals,
		Faces:     faces,
		viewing:   make(UVSet, len(faces)),
		drawing:   make(UVSet, len(faces)),
		active:    MappingViewing,
		uvDirty:   true,
		radius:    radius,
	}, nil
}

// BoundingRadius returns the radius of the smallest origin-centered
// ball enclosing all vertices.
func (m *Mesh) BoundingRadius() float32 {
	return m.radius
}

// Active returns the mapping currently driving texturing.
func (m *Mesh) Active() Mapping {
	return m.active
}

// SetActive switches the active mapping.
func (m *Mesh) SetActive(mapping Mapping) {
	if m.active == mapping {
		return
	}
	m.active = mapping
	m.uvDirty = true
}

// ActiveUV returns the UV set of the active mapping.
func (m *Mesh) ActiveUV() UVSet {
	if m.active == MappingDrawing {
		return m.drawing
	}
	return m.viewing
}

// UV returns the UV set for the given mapping.
func (m *Mesh) UV(mapping Mapping) UVSet {
	if mapping == MappingDrawing {
		return m.drawing
	}
	return m.viewing
}

// SetFaceUV stores the texture coordinates of one face in the given
// mapping and flags the active UV data dirty when it is affected.
func (m *Mesh) SetFaceUV(mapping Mapping, face int, uv FaceUV) {
	m.UV(mapping)[face] = uv
	if mapping == m.active {
		m.uvDirty = true
	}
}

// TakeUVDirty reports whether active UV data changed since the last
// call and clears the flag. The renderer uses it to decide when to
// re-upload the UV buffer.
func (m *Mesh) TakeUVDirty() bool {
	d := m.uvDirty
	m.uvDirty = false
	return d
}

// FaceCenter returns the centroid of a face, used for coarse
// hit checks.
func (m *Mesh) FaceCenter(face int) math.Vec3 {
	f := m.Faces[face]
	sum := m.Positions[f[0]].Add(m.Positions[f[1]]).Add(m.Positions[f[2]])
	return sum.Scale(1.0 / 3.0)
}
