package meshsimp

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

/*
 * quadric edge collapse simplification of a triangle mesh
 */

type Options struct {
	// Target face ratio (0..1], used when TargetFaces is not positive.
	Ratio float64
	// Absolute target face count, overrides Ratio when positive.
	TargetFaces int
	// Cap on the number of edge collapses, derived from the target when not
	// positive.
	MaxCollapses int
	// Wall-clock budget in seconds, checked once per iteration. Not positive
	// disables it.
	TimeLimit float64
	// Collapses between progress lines on stderr.
	ProgressInterval int
}

type Report struct {
	FacesBefore int
	FacesAfter  int
	VertsBefore int
	VertsAfter  int
}

const default_progress_interval = 20000

// Simplify reduces the face count of the wrapped mesh in place until the
// derived target, the collapse cap or the time budget is reached. Reaching a
// cap early is not an error: the partially simplified mesh is a valid result.
// A FaceUVs slice whose length matches the face count is filtered and
// reindexed in lockstep with the faces, any other FaceUVs value is dropped.
func (mw *MeshWrapper) Simplify(opt Options) (rep Report, err error) {
	verts := mw.Mesh.Verts.Buffer
	faces := mw.Mesh.Faces.Buffer

	rep.FacesBefore = len(faces) / 3
	rep.VertsBefore = len(verts) / 3
	rep.FacesAfter = rep.FacesBefore
	rep.VertsAfter = rep.VertsBefore

	if len(mw.FaceUVs) != rep.FacesBefore {
		mw.FaceUVs = nil
	}
	if rep.FacesBefore == 0 {
		return
	}

	// Reject malformed input before touching any state.
	for i, index := range faces {
		if index < 0 || index >= rep.VertsBefore {
			err = errors.New("Face " + strconv.Itoa(i/3) +
				" references vertex out of range: " + strconv.Itoa(index))
			return
		}
	}

	target, max_collapses := deriveTargets(rep.FacesBefore, opt)
	if debug_level() >= 1 {
		fmt.Println("Simplification goal to reduce face count from",
			rep.FacesBefore, "to", target)
	}

	cs := newCollapseState(verts, faces)

	// Seed one candidate per canonical adjacent pair.
	candidates := &candidateHeap{}
	for u := range cs.adjacency {
		for v := range cs.adjacency[u] {
			if u < v {
				cs.pushCandidate(candidates, u, v)
			}
		}
	}

	interval := opt.ProgressInterval
	if interval <= 0 {
		interval = default_progress_interval
	}
	next_progress := interval
	collapsed := 0
	started := time.Now()

	for cs.liveFaces > target && candidates.Len() > 0 && collapsed < max_collapses {
		if opt.TimeLimit > 0 && time.Since(started).Seconds() >= opt.TimeLimit {
			if debug_level() >= 1 {
				fmt.Println("Time budget exceeded, stopping with", cs.liveFaces, "faces")
			}
			break
		}

		e := heap.Pop(candidates).(candidate)

		// Stale entries reference collapsed vertices or dissolved edges and
		// are simply discarded here instead of being removed from the heap.
		if !cs.vertAlive[e.u] || !cs.vertAlive[e.v] || !cs.adjacency[e.u][e.v] {
			continue
		}

		// Collapse v into u at the edge midpoint. The solved optimal position
		// is only used for cost estimation, repositioning at the midpoint
		// avoids re-solving the local system on every merge.
		mid := cs.midpoint(e.u, e.v)
		cs.verts[3*e.u] = mid.X
		cs.verts[3*e.u+1] = mid.Y
		cs.verts[3*e.u+2] = mid.Z

		cs.vq[e.u].Add(&cs.vq[e.v])
		cs.rewire(e.v, e.u)
		cs.replaceInFaces(e.v, e.u)

		// Refresh candidates around the surviving vertex so the updated
		// geometry propagates into future cost estimates.
		for w := range cs.adjacency[e.u] {
			cs.pushCandidate(candidates, e.u, w)
		}

		collapsed++
		if collapsed >= next_progress {
			fmt.Fprintf(os.Stderr, "collapsed=%d faces_now=%d target=%d\n",
				collapsed, cs.liveFaces, target)
			next_progress += interval
		}
	}

	cs.compact(mw)
	rep.FacesAfter = mw.Mesh.Faces.Len()
	rep.VertsAfter = mw.Mesh.Verts.Len()
	return
}

// pushCandidate estimates the collapse cost of the edge (u,v) and pushes a
// fresh entry. The cost is the merged quadric evaluated at the solved optimal
// position, or at the edge midpoint when the local system is near-singular.
func (cs *collapseState) pushCandidate(candidates *candidateHeap, u, v int) {
	if u == v {
		return
	}
	if u > v {
		u, v = v, u
	}
	if !cs.adjacency[u][v] {
		return
	}

	Q := cs.vq[u]
	Q.Add(&cs.vq[v])

	position, ok := solvePosition(&Q)
	if !ok {
		position = cs.midpoint(u, v)
	}
	heap.Push(candidates, candidate{u: u, v: v, cost: Q.VertexError(position)})
}

// deriveTargets resolves the stopping parameters: an explicit face target
// wins over the ratio, and the collapse cap defaults to the number of faces
// that must disappear.
func deriveTargets(faces0 int, opt Options) (target, max_collapses int) {
	if opt.TargetFaces > 0 {
		target = opt.TargetFaces
	} else {
		ratio := math.Min(math.Max(opt.Ratio, 0), 1)
		target = int(math.Floor(float64(faces0) * ratio))
	}
	if opt.MaxCollapses > 0 {
		max_collapses = opt.MaxCollapses
	} else {
		max_collapses = faces0 - target
		if max_collapses < 0 {
			max_collapses = 0
		}
	}
	return
}
