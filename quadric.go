package meshsimp

import (
	"github.com/nat-n/geom"
	"math"
)

// A triangle whose cross product is shorter than this is treated as having
// zero area and contributes no quadric.
const area_epsilon = 1e-12

// Calculate the Kp fundemental error quadric of the plane ax+by+cz+d = 0
func planeQuadric(a, b, c, d float64) geom.SymMat4 {
	return geom.SymMat4{
		a * a, a * b, a * c, a * d,
		b * b, b * c, b * d,
		c * c, c * d,
		d * d,
	}
}

// Calculate the plane quadric of face fi from its corner positions.
// ok is false for a degenerate (zero area) face.
func (cs *collapseState) faceQuadric(fi int) (Kp geom.SymMat4, ok bool) {
	a, b, c := cs.faces[3*fi], cs.faces[3*fi+1], cs.faces[3*fi+2]

	px, py, pz := cs.verts[3*a], cs.verts[3*a+1], cs.verts[3*a+2]
	qx, qy, qz := cs.verts[3*b], cs.verts[3*b+1], cs.verts[3*b+2]
	rx, ry, rz := cs.verts[3*c], cs.verts[3*c+1], cs.verts[3*c+2]

	// face normal as the cross product of two edge vectors
	ux, uy, uz := qx-px, qy-py, qz-pz
	vx, vy, vz := rx-px, ry-py, rz-pz
	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx

	length := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if length < area_epsilon {
		return
	}
	nx /= length
	ny /= length
	nz /= length

	// use abcd variable names like in the standard explanations
	d := -(nx*px + ny*py + nz*pz)
	return planeQuadric(nx, ny, nz, d), true
}

// Accumulate the error quadric of every live face onto its three corner
// vertices. Faces found degenerate here are marked dead immediately and
// never revisited.
func (cs *collapseState) accumulateQuadrics() {
	for fi := 0; fi < len(cs.faces)/3; fi++ {
		if !cs.faceAlive[fi] {
			continue
		}
		Kp, ok := cs.faceQuadric(fi)
		if !ok {
			cs.faceAlive[fi] = false
			cs.liveFaces--
			continue
		}
		cs.vq[cs.faces[3*fi]].Add(&Kp)
		cs.vq[cs.faces[3*fi+1]].Add(&Kp)
		cs.vq[cs.faces[3*fi+2]].Add(&Kp)
	}
}
