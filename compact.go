package meshsimp

// compact rewrites the surviving vertices and faces into dense, reindexed
// buffers on the wrapped mesh, preserving original relative order. A valid
// FaceUVs channel is filtered in lockstep with the faces.
func (cs *collapseState) compact(mw *MeshWrapper) {
	// Dense remap of live vertices onto the front of the vertex buffer.
	remap := make([]int, len(cs.vertAlive))
	kept := 0
	for i, alive := range cs.vertAlive {
		if !alive {
			remap[i] = -1
			continue
		}
		remap[i] = kept
		cs.verts[3*kept] = cs.verts[3*i]
		cs.verts[3*kept+1] = cs.verts[3*i+1]
		cs.verts[3*kept+2] = cs.verts[3*i+2]
		kept++
	}
	mw.Mesh.Verts.Buffer = cs.verts[:3*kept]

	keep_uvs := mw.FaceUVs != nil
	uvs := mw.FaceUVs[:0]

	kept = 0
	for fi := 0; fi < len(cs.faces)/3; fi++ {
		if !cs.faceAlive[fi] {
			continue
		}
		a := remap[cs.faces[3*fi]]
		b := remap[cs.faces[3*fi+1]]
		c := remap[cs.faces[3*fi+2]]
		if a < 0 || b < 0 || c < 0 {
			// A live face may never reference a dead vertex, but a defensive
			// drop beats emitting a dangling index.
			assert("live face references only live vertices", false)
			continue
		}
		cs.faces[3*kept], cs.faces[3*kept+1], cs.faces[3*kept+2] = a, b, c
		if keep_uvs {
			uvs = append(uvs, mw.FaceUVs[fi])
		}
		kept++
	}
	mw.Mesh.Faces.Buffer = cs.faces[:3*kept]
	if keep_uvs {
		mw.FaceUVs = uvs
	}
}
