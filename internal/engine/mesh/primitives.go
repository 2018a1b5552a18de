package mesh

import (
	"github.com/chewxy/math32"

	"github.com/footsoldier/chameleon/pkg/math"
)

// NewSphere builds a UV sphere centered on the origin. segments is the
// longitudinal resolution, rings the latitudinal one. Pole caps use
// single triangles so no degenerate faces are produced.
func NewSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var positions []math.Vec3
	var normals []math.Vec3

	for r := 0; r <= rings; r++ {
		theta := float32(r) / float32(rings) * math32.Pi
		sinT := math32.Sin(theta)
		cosT := math32.Cos(theta)
		for s := 0; s <= segments; s++ {
			phi := float32(s) / float32(segments) * 2 * math32.Pi
			n := math.Vec3{
				X: sinT * math32.Cos(phi),
				Y: cosT,
				Z: sinT * math32.Sin(phi),
			}
			positions = append(positions, n.Scale(radius))
			normals = append(normals, n)
		}
	}

	var faces []Face
	stride := uint32(segments + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint32(r)*stride + uint32(s)
			b := a + 1
			c := a + stride
			d := c + 1

			// Top row collapses the upper edge, bottom row the lower.
			if r != 0 {
				faces = append(faces, Face{a, b, c})
			}
			if r != rings-1 {
				faces = append(faces, Face{b, d, c})
			}
		}
	}

	m, err := New(positions, normals, faces)
	if err != nil {
		panic("mesh: sphere construction: " + err.Error())
	}
	return m
}

// NewBox builds an axis-aligned box centered on the origin with the
// given full extents. Each side carries its own four vertices so face
// normals stay flat.
func NewBox(width, height, depth float32) *Mesh {
	x := width / 2
	y := height / 2
	z := depth / 2

	corners := [8]math.Vec3{
		{X: -x, Y: -y, Z: -z},
		{X: x, Y: -y, Z: -z},
		{X: x, Y: y, Z: -z},
		{X: -x, Y: y, Z: -z},
		{X: -x, Y: -y, Z: z},
		{X: x, Y: -y, Z: z},
		{X: x, Y: y, Z: z},
		{X: -x, Y: y, Z: z},
	}

	// Quad corners are listed counter-clockwise seen from outside.
	sides := [6]struct {
		quad   [4]int
		normal math.Vec3
	}{
		{[4]int{4, 5, 6, 7}, math.Vec3{Z: 1}},
		{[4]int{1, 0, 3, 2}, math.Vec3{Z: -1}},
		{[4]int{5, 1, 2, 6}, math.Vec3{X: 1}},
		{[4]int{0, 4, 7, 3}, math.Vec3{X: -1}},
		{[4]int{7, 6, 2, 3}, math.Vec3{Y: 1}},
		{[4]int{0, 1, 5, 4}, math.Vec3{Y: -1}},
	}

	var positions []math.Vec3
	var normals []math.Vec3
	var faces []Face

	for _, side := range sides {
		base := uint32(len(positions))
		for _, ci := range side.quad {
			positions = append(positions, corners[ci])
			normals = append(normals, side.normal)
		}
		faces = append(faces,
			Face{base, base + 1, base + 2},
			Face{base, base + 2, base + 3},
		)
	}

	m, err := New(positions, normals, faces)
	if err != nil {
		panic("mesh: box construction: " + err.Error())
	}
	return m
}

// NewTorus builds a torus centered on the origin with its major circle
// in the XZ plane. radius is the major radius, tube the minor one.
func NewTorus(radius, tube float32, radialSegments, tubeSegments int) *Mesh {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if tubeSegments < 3 {
		tubeSegments = 3
	}

	var positions []math.Vec3
	var normals []math.Vec3

	for i := 0; i <= radialSegments; i++ {
		u := float32(i) / float32(radialSegments) * 2 * math32.Pi
		cosU := math32.Cos(u)
		sinU := math32.Sin(u)
		for j := 0; j <= tubeSegments; j++ {
			v := float32(j) / float32(tubeSegments) * 2 * math32.Pi
			cosV := math32.Cos(v)
			sinV := math32.Sin(v)

			positions = append(positions, math.Vec3{
				X: (radius + tube*cosV) * cosU,
				Y: tube * sinV,
				Z: (radius + tube*cosV) * sinU,
			})
			normals = append(normals, math.Vec3{
				X: cosV * cosU,
				Y: sinV,
				Z: cosV * sinU,
			})
		}
	}

	var faces []Face
	stride := uint32(tubeSegments + 1)
	for i := 0; i < radialSegments; i++ {
		for j := 0; j < tubeSegments; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride

			faces = append(faces,
				Face{a, a + 1, b},
				Face{a + 1, b + 1, b},
			)
		}
	}

	m, err := New(positions, normals, faces)
	if err != nil {
		panic("mesh: torus construction: " + err.Error())
	}
	return m
}
