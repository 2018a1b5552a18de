// Package texture manages the dual texture mappings of a paintable
// mesh. The viewing mapping pins every face to the center of a flat
// placeholder raster, so the mesh looks uniformly blank while the
// camera moves. The drawing mapping projects each vertex through the
// paint camera onto a canvas-sized raster, so pixels painted at a
// canvas position land exactly under the pointer.
package texture

import (
	"image"
	"image/color"

	"go.uber.org/zap"

	"github.com/footsoldier/chameleon/internal/engine/brush"
	"github.com/footsoldier/chameleon/internal/engine/mesh"
	"github.com/footsoldier/chameleon/internal/logger"
	"github.com/footsoldier/chameleon/pkg/math"
)

// ProjectionSource supplies the view-projection that unwraps the mesh
// into drawing coordinates. The orthographic camera controller
// implements it.
type ProjectionSource interface {
	ViewProjection() math.Mat4
}

// Manager owns both rasters and both UV mappings of one mesh, and is
// the only mutator of the mesh's UV data. Drawing UVs are recomputed
// lazily: they stay valid until the projection is invalidated, so
// repeated mode switches under a parked camera reuse them.
type Manager struct {
	mesh  *mesh.Mesh
	proj  ProjectionSource
	brush *brush.Engine

	viewing *Raster
	drawing *Raster

	stale       bool
	projections int

	affected   *FaceSet
	strokeLast math.Vec2
}

// NewManager builds a manager for the mesh. The viewing raster is a
// single placeholder pixel; the drawing raster matches the canvas so
// canvas coordinates map straight onto it.
func NewManager(m *mesh.Mesh, proj ProjectionSource, b *brush.Engine, canvasW, canvasH int, placeholder, canvas color.RGBA) *Manager {
	t := &Manager{
		mesh:     m,
		proj:     proj,
		brush:    b,
		viewing:  NewRaster(1, 1, placeholder),
		drawing:  NewRaster(canvasW, canvasH, canvas),
		stale:    true,
		affected: NewFaceSet(len(m.Faces)),
	}

	center := math.Vec2{X: 0.5, Y: 0.5}
	for f := range m.Faces {
		m.SetFaceUV(mesh.MappingViewing, f, mesh.FaceUV{center, center, center})
	}
	return t
}

// Viewing returns the placeholder raster shown while the camera moves.
func (t *Manager) Viewing() *Raster {
	return t.viewing
}

// Drawing returns the paintable canvas raster.
func (t *Manager) Drawing() *Raster {
	return t.drawing
}

// Active returns the raster belonging to the mesh's active mapping.
func (t *Manager) Active() *Raster {
	if t.mesh.Active() == mesh.MappingDrawing {
		return t.drawing
	}
	return t.viewing
}

// ApplyViewing switches the mesh to the viewing mapping. Constant
// time; the viewing UVs never change after construction.
func (t *Manager) ApplyViewing() {
	t.mesh.SetActive(mesh.MappingViewing)
}

// ApplyDrawing switches the mesh to the drawing mapping, recomputing
// the projected UVs first when they are stale.
func (t *Manager) ApplyDrawing() {
	t.PrepareDrawing()
	t.mesh.SetActive(mesh.MappingDrawing)
	t.drawing.MarkDirty()
}

// PrepareDrawing rebuilds the drawing UV set by projecting every
// vertex through the paint camera. NDC x and y map to [0,1] with v
// flipped, matching the raster's top-left origin. No-op while the
// projection is fresh.
func (t *Manager) PrepareDrawing() {
	if !t.stale {
		return
	}

	vp := t.proj.ViewProjection()
	uvs := make([]math.Vec2, len(t.mesh.Positions))
	for i, p := range t.mesh.Positions {
		clip := vp.MulVec4(math.Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
		w := clip.W
		if w == 0 {
			w = 1
		}
		uvs[i] = math.Vec2{
			X: (clip.X/w + 1) * 0.5,
			Y: (1 - clip.Y/w) * 0.5,
		}
	}
	for f, face := range t.mesh.Faces {
		t.mesh.SetFaceUV(mesh.MappingDrawing, f, mesh.FaceUV{
			uvs[face[0]], uvs[face[1]], uvs[face[2]],
		})
	}

	t.affected.AddAll()
	t.stale = false
	t.projections++
	logger.Debug("drawing projection recomputed",
		zap.Int("vertices", len(t.mesh.Positions)),
		zap.Int("recomputes", t.projections))
}

// InvalidateProjection marks the drawing UVs stale. Call after the
// paint camera moves or resets, or after the canvas resizes.
func (t *Manager) InvalidateProjection() {
	t.stale = true
}

// ProjectionStale reports whether the next ApplyDrawing recomputes the
// drawing UVs.
func (t *Manager) ProjectionStale() bool {
	return t.stale
}

// Projections returns how many times the drawing UVs were recomputed.
func (t *Manager) Projections() int {
	return t.projections
}

// StrokeStart begins a paint stroke at a canvas position.
func (t *Manager) StrokeStart(pos math.Vec2) {
	t.brush.StartStroke(t.drawing.Image(), pos)
	t.drawing.MarkDirty()
	t.markAffected(pos, pos)
	t.strokeLast = pos
}

// StrokeMove extends the active stroke to a canvas position.
func (t *Manager) StrokeMove(pos math.Vec2) {
	t.brush.ContinueStroke(pos)
	t.drawing.MarkDirty()
	t.markAffected(t.strokeLast, pos)
	t.strokeLast = pos
}

// StrokeEnd finishes the active stroke and returns its summary.
func (t *Manager) StrokeEnd() brush.Stroke {
	return t.brush.EndStroke()
}

// markAffected records faces whose projected footprint may intersect
// the stroke segment. The test is a radius-inflated bounding box
// around each face's drawing UVs against the segment's bounding box,
// coarse on purpose: a false positive only costs texture re-upload.
func (t *Manager) markAffected(from, to math.Vec2) {
	w, h := t.drawing.Size()
	fw, fh := float32(w), float32(h)
	r := t.brush.Radius()

	segMinX, segMaxX := from.X, to.X
	if segMinX > segMaxX {
		segMinX, segMaxX = segMaxX, segMinX
	}
	segMinY, segMaxY := from.Y, to.Y
	if segMinY > segMaxY {
		segMinY, segMaxY = segMaxY, segMinY
	}

	for f, uv := range t.mesh.UV(mesh.MappingDrawing) {
		minX, maxX := uv[0].X, uv[0].X
		minY, maxY := uv[0].Y, uv[0].Y
		for _, c := range uv[1:] {
			if c.X < minX {
				minX = c.X
			}
			if c.X > maxX {
				maxX = c.X
			}
			if c.Y < minY {
				minY = c.Y
			}
			if c.Y > maxY {
				maxY = c.Y
			}
		}
		if segMaxX >= minX*fw-r && segMinX <= maxX*fw+r &&
			segMaxY >= minY*fh-r && segMinY <= maxY*fh+r {
			t.affected.Add(f)
		}
	}
}

// Affected returns the faces touched since the last SyncDone.
func (t *Manager) Affected() *FaceSet {
	return t.affected
}

// SyncDone clears the affected-face set once the renderer caught up.
func (t *Manager) SyncDone() {
	t.affected.Clear()
}

// Resize rescales the drawing raster to a new canvas size and
// invalidates the projection.
func (t *Manager) Resize(w, h int) {
	t.drawing.Resize(w, h)
	t.InvalidateProjection()
}

// Seed composites an image over the drawing raster, scaled to the
// canvas.
func (t *Manager) Seed(src image.Image) {
	t.drawing.Seed(src)
}
