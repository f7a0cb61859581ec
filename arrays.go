package meshsimp

import (
	"errors"
	"github.com/nat-n/gomesh/mesh"
	"github.com/nat-n/gomesh/triplebuffer"
)

// SimplifyArrays is the flat-array entry point, shaped for callers that
// marshal plain vertex/index arrays across a language boundary. verts holds
// packed xyz triples and faces packed 0-based index triples; both are copied,
// the caller's slices are never mutated. A faceUVs slice is carried through
// simplification only when its length equals the face count, otherwise the
// returned UV slice is nil.
func SimplifyArrays(verts []float64, faces []int, faceUVs [][6]float64,
	opt Options) (newVerts []float64, newFaces []int, newUVs [][6]float64,
	rep Report, err error) {

	if len(verts)%3 != 0 {
		err = errors.New("Vertex array length must be a multiple of 3")
		return
	}
	if len(faces)%3 != 0 {
		err = errors.New("Face array length must be a multiple of 3")
		return
	}

	// Initialise buffers with exactly the required underlying capacity.
	m := mesh.New("arrays")
	m.Verts = triplebuffer.NewVertexBuffer()
	m.Verts.Buffer = make([]float64, 0, len(verts))
	for i := 0; i+2 < len(verts); i += 3 {
		m.Verts.Append(verts[i], verts[i+1], verts[i+2])
	}
	m.Faces.Buffer = make([]int, 0, len(faces))
	for i := 0; i+2 < len(faces); i += 3 {
		m.Faces.Append(faces[i], faces[i+1], faces[i+2])
	}

	mw := Wrap(m)
	if len(faceUVs) == len(faces)/3 && len(faceUVs) > 0 {
		mw.FaceUVs = append([][6]float64(nil), faceUVs...)
	}

	rep, err = mw.Simplify(opt)
	if err != nil {
		return
	}
	return mw.Mesh.Verts.Buffer, mw.Mesh.Faces.Buffer, mw.FaceUVs, rep, nil
}
