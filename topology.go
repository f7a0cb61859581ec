package meshsimp

import (
	"github.com/nat-n/geom"
)

// collapseState aggregates all mutable state of one simplification run:
// flat vertex/face buffers (aliased from the mesh, mutated in place),
// per-vertex error quadric accumulators, per-vertex adjacency sets, and
// per-vertex/per-face liveness. It holds no ordering or cost policy.
type collapseState struct {
	verts     []float64
	faces     []int
	vq        []geom.SymMat4
	adjacency []map[int]bool
	vertAlive []bool
	faceAlive []bool
	liveFaces int
}

func newCollapseState(verts []float64, faces []int) (cs *collapseState) {
	nv := len(verts) / 3
	nf := len(faces) / 3

	cs = &collapseState{
		verts:     verts,
		faces:     faces,
		vq:        make([]geom.SymMat4, nv),
		adjacency: make([]map[int]bool, nv),
		vertAlive: make([]bool, nv),
		faceAlive: make([]bool, nf),
		liveFaces: nf,
	}
	for i := range cs.vertAlive {
		cs.vertAlive[i] = true
		cs.adjacency[i] = make(map[int]bool)
	}
	for i := range cs.faceAlive {
		cs.faceAlive[i] = true
	}

	cs.accumulateQuadrics()
	cs.buildAdjacency()
	return
}

// Record each live face's three undirected edges in the adjacency sets.
func (cs *collapseState) buildAdjacency() {
	for fi := 0; fi < len(cs.faces)/3; fi++ {
		if !cs.faceAlive[fi] {
			continue
		}
		a, b, c := cs.faces[3*fi], cs.faces[3*fi+1], cs.faces[3*fi+2]
		cs.adjacency[a][b] = true
		cs.adjacency[a][c] = true
		cs.adjacency[b][a] = true
		cs.adjacency[b][c] = true
		cs.adjacency[c][a] = true
		cs.adjacency[c][b] = true
	}
}

// rewire moves every neighbor of removed onto survivor, marks removed dead
// and clears its adjacency. The adjacency symmetry invariant holds on return,
// and removed no longer appears in any set.
func (cs *collapseState) rewire(removed, survivor int) {
	defer func() {
		assert("rewire left no references to the removed vertex", func() bool {
			for _, adj := range cs.adjacency {
				if adj[removed] {
					return false
				}
			}
			return len(cs.adjacency[removed]) == 0
		})
	}()

	for w := range cs.adjacency[removed] {
		if w == survivor {
			continue
		}
		delete(cs.adjacency[w], removed)
		cs.adjacency[w][survivor] = true
		cs.adjacency[survivor][w] = true
	}
	delete(cs.adjacency[survivor], removed)
	cs.adjacency[removed] = make(map[int]bool)
	cs.vertAlive[removed] = false
}

// replaceInFaces substitutes survivor for removed in every live face. A face
// left with two equal corners is degenerate: it is marked dead and the live
// face count decremented.
func (cs *collapseState) replaceInFaces(removed, survivor int) {
	for fi := 0; fi < len(cs.faces)/3; fi++ {
		if !cs.faceAlive[fi] {
			continue
		}
		a, b, c := cs.faces[3*fi], cs.faces[3*fi+1], cs.faces[3*fi+2]
		if a == removed {
			a = survivor
		}
		if b == removed {
			b = survivor
		}
		if c == removed {
			c = survivor
		}
		if a == b || b == c || a == c {
			cs.faceAlive[fi] = false
			cs.liveFaces--
			continue
		}
		cs.faces[3*fi], cs.faces[3*fi+1], cs.faces[3*fi+2] = a, b, c
	}
}

func (cs *collapseState) midpoint(u, v int) geom.Vec3 {
	return geom.Vec3{
		(cs.verts[3*u] + cs.verts[3*v]) * 0.5,
		(cs.verts[3*u+1] + cs.verts[3*v+1]) * 0.5,
		(cs.verts[3*u+2] + cs.verts[3*v+2]) * 0.5,
	}
}
