package meshsimp

import (
	"github.com/nat-n/geom"
	"github.com/nat-n/gomesh/transformation"
	"math"
)

// ScaleAndCenter transforms the mesh so that its bounding box is centered on
// the origin and the extent of its largest dimension equals max_dimension.
func (mw *MeshWrapper) ScaleAndCenter(max_dimension float64) {
	bbox := mw.Mesh.BoundingBox()
	center := bbox.Center()
	current_max_dim := math.Max(math.Max(bbox.Width(), bbox.Height()), bbox.Depth())
	if current_max_dim == 0 {
		return
	}
	scale_factor := max_dimension / current_max_dim

	// center then scale
	s := transformation.Scale(scale_factor)
	transform := s.Multiply(
		transformation.Translation(-center.GetX(), -center.GetY(), -center.GetZ()))

	buffer := mw.Mesh.Verts.Buffer
	scratch := make([]geom.Vec3, len(buffer)/3)
	all_vertices := make([]geom.Vec3I, 0, len(scratch))
	for i := range scratch {
		scratch[i] = geom.Vec3{buffer[3*i], buffer[3*i+1], buffer[3*i+2]}
		all_vertices = append(all_vertices, geom.Vec3I(&scratch[i]))
	}

	transform.ApplyToVec3(all_vertices...)

	for i, v := range scratch {
		buffer[3*i], buffer[3*i+1], buffer[3*i+2] = v.X, v.Y, v.Z
	}
	mw.BoundingBox = mw.Mesh.BoundingBox()
}
