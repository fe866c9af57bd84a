// Package scene holds the plain data entities a frame renders: a camera and
// a set of meshes. Callers populate them before the first frame and mutate
// them between frames; nothing here validates geometry.
package scene

import "github.com/anatolicheban/3d-own-renderer/internal/geom"

// Camera looks from Position towards Target. World-up is fixed at (0,1,0);
// there is no orientation override.
type Camera struct {
	Position geom.Vec3
	Target   geom.Vec3
}

// Mesh is an ordered, index-addressed set of vertices with a world placement.
// Rotation is Euler angles in radians (x=pitch, y=yaw, z=roll). The name is
// an identifier only and plays no part in the math.
type Mesh struct {
	Name     string
	Position geom.Vec3
	Rotation geom.Vec3
	Vertices []geom.Vec3
}

// NewMesh builds a mesh at the origin with the given vertices.
func NewMesh(name string, vertices []geom.Vec3) *Mesh {
	return &Mesh{Name: name, Vertices: vertices}
}

// Scene is the explicit per-render context: one camera, an ordered mesh list.
// Meshes render in slice order; overlapping points resolve last-write-wins.
type Scene struct {
	Camera *Camera
	Meshes []*Mesh
}

// NewCube returns the 8-vertex unit cube centered at the world origin.
func NewCube(name string) *Mesh {
	return NewMesh(name, []geom.Vec3{
		{-1, 1, 1},
		{1, 1, 1},
		{-1, -1, 1},
		{-1, -1, -1},
		{-1, 1, -1},
		{1, 1, -1},
		{1, -1, 1},
		{1, -1, -1},
	})
}

// Reference returns the reference scene: the unit cube viewed from (0,0,10)
// looking at the origin.
func Reference() *Scene {
	return &Scene{
		Camera: &Camera{Position: geom.Vec3{0, 0, 10}, Target: geom.Zero()},
		Meshes: []*Mesh{NewCube("cube")},
	}
}
