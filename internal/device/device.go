// Package device implements the projection and rasterization engine: it owns
// the RGBA back buffer, builds the per-frame view and projection matrices and
// plots projected vertices as single pixels. The pipeline does no defensive
// validation; a degenerate camera or projection propagates as garbage pixel
// positions, not as an error.
package device

import (
	"image"
	"math"

	"github.com/anatolicheban/3d-own-renderer/internal/geom"
	"github.com/anatolicheban/3d-own-renderer/internal/scene"
)

// Default projection parameters of the reference scene.
const (
	DefaultFOV  = 0.78
	DefaultNear = 0.01
	DefaultFar  = 1.0
)

// Device renders point clouds into a flat RGBA byte buffer,
// len = width×height×4, row-major, origin top-left. Width and height are
// fixed at construction; the buffer is never resized.
type Device struct {
	width  int
	height int

	// Projection parameters, read each Render call.
	FOV  float64
	Near float64
	Far  float64

	// PointColor is written for every in-bounds projected vertex.
	PointColor geom.Color

	back []uint8
}

// New allocates a device with a zeroed back buffer and the reference
// projection parameters.
func New(width, height int) *Device {
	return &Device{
		width:      width,
		height:     height,
		FOV:        DefaultFOV,
		Near:       DefaultNear,
		Far:        DefaultFar,
		PointColor: geom.Yellow(),
		back:       make([]uint8, width*height*4),
	}
}

func (d *Device) Width() int  { return d.width }
func (d *Device) Height() int { return d.height }

// Buffer returns the live back buffer for zero-copy presentation. The slice
// is replaced wholesale on Clear, so presenters must re-fetch it each frame.
func (d *Device) Buffer() []uint8 { return d.back }

// Clear replaces the back buffer with a fresh zeroed slice (transparent
// black). It must run before any pixel write in a frame; swapping the slice
// rather than rewriting it keeps a skipped clear from aliasing stale data.
func (d *Device) Clear() {
	d.back = make([]uint8, d.width*d.height*4)
}

// PutPixel writes a color at the pixel addressed by truncating x and y toward
// zero. No bounds check: the caller must guarantee 0 ≤ x < width and
// 0 ≤ y < height (DrawPoint is the sole gate). Channels scale by plain
// truncation, uint8(c·255), so 1.0 maps to exactly 255.
func (d *Device) PutPixel(x, y float64, c geom.Color) {
	i := ((int(y) * d.width) + int(x)) * 4
	d.back[i] = uint8(c.R * 255)
	d.back[i+1] = uint8(c.G * 255)
	d.back[i+2] = uint8(c.B * 255)
	d.back[i+3] = uint8(c.A * 255)
}

// Project transforms a 3D point through the given matrix (homogeneous
// transform plus perspective divide) and remaps the centered normalized
// result to pixel space. Y is flipped: normalized-device Y grows upward,
// pixel rows grow downward.
func (d *Device) Project(coord geom.Vec3, transform geom.Mat4) geom.Vec2 {
	p := transform.TransformCoord(coord)
	w := float64(d.width)
	h := float64(d.height)
	return geom.Vec2{
		math.Floor(p[0]*w + w/2),
		math.Floor(-p[1]*h + h/2),
	}
}

// DrawPoint plots a projected point if it lies inside the buffer; points
// outside [0,width)×[0,height) are silently discarded.
func (d *Device) DrawPoint(p geom.Vec2) {
	if p[0] >= 0 && p[1] >= 0 && p[0] < float64(d.width) && p[1] < float64(d.height) {
		d.PutPixel(p[0], p[1], d.PointColor)
	}
}

// Render projects and plots every vertex of every mesh. The view and
// projection matrices are built once per call and shared across meshes; each
// mesh contributes world = translation·rotation (rotation applied first).
// No sorting, occlusion or culling: draw order is mesh order then vertex
// order, and the last write to a pixel wins.
func (d *Device) Render(cam *scene.Camera, meshes []*scene.Mesh) {
	view := geom.LookAtLH(cam.Position, cam.Target, geom.Up())
	proj := geom.PerspectiveFovLH(d.FOV, float64(d.width)/float64(d.height), d.Near, d.Far)
	viewProj := proj.Mul(view)

	for _, m := range meshes {
		world := geom.Translation(m.Position[0], m.Position[1], m.Position[2]).
			Mul(geom.RotationYawPitchRoll(m.Rotation[1], m.Rotation[0], m.Rotation[2]))
		transform := viewProj.Mul(world)

		for _, v := range m.Vertices {
			d.DrawPoint(d.Project(v, transform))
		}
	}
}

// RenderScene renders a scene context.
func (d *Device) RenderScene(s *scene.Scene) {
	d.Render(s.Camera, s.Meshes)
}

// Present copies the back buffer into the caller's surface and reports the
// bytes copied. Pure hand-off, no transformation.
func (d *Device) Present(dst []byte) int {
	return copy(dst, d.back)
}

// Snapshot returns the current frame as an NRGBA image copy.
func (d *Device) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d.width, d.height))
	copy(img.Pix, d.back)
	return img
}
