package meshsimp

import (
	"github.com/nat-n/gomesh/cuboid"
	"github.com/nat-n/gomesh/mesh"
)

// MeshWrapper couples a triangle mesh with the optional per-face attribute
// channel that is carried, untouched, through simplification. FaceUVs holds
// one (u,v) pair per triangle corner and is only considered valid while its
// length matches the face count.
type MeshWrapper struct {
	Mesh        *mesh.Mesh
	FaceUVs     [][6]float64
	BoundingBox *cuboid.Cuboid
}

type Stats struct {
	Faces  int
	Verts  int
	Width  float64
	Height float64
	Depth  float64
}

func Wrap(m *mesh.Mesh) (mw *MeshWrapper) {
	mw = &MeshWrapper{Mesh: m}
	if m.Verts.Len() > 0 {
		mw.BoundingBox = m.BoundingBox()
	}
	return
}

func (mw *MeshWrapper) Stats() (s Stats) {
	s.Faces = mw.Mesh.Faces.Len()
	s.Verts = mw.Mesh.Verts.Len()
	if s.Verts > 0 {
		bb := mw.Mesh.BoundingBox()
		s.Width = bb.Width()
		s.Height = bb.Height()
		s.Depth = bb.Depth()
	}
	return
}
