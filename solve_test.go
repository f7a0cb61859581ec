package meshsimp

import (
	"math"
	"testing"
)

func TestSolve3(t *testing.T) {
	x, ok := solve3(
		[9]float64{2, 0, 0, 0, 4, 0, 0, 0, 8},
		[3]float64{2, 8, 24},
	)
	if !ok {
		t.Fatal("diagonal system reported singular")
	}
	want := [3]float64{1, 2, 3}
	for i := range x {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Fatalf("x=%v want=%v", x, want)
		}
	}
}

func TestSolve3Pivoting(t *testing.T) {
	// Zero leading pivot, solvable only with a row swap.
	x, ok := solve3(
		[9]float64{0, 1, 0, 1, 0, 0, 0, 0, 1},
		[3]float64{2, 3, 4},
	)
	if !ok {
		t.Fatal("permutation system reported singular")
	}
	want := [3]float64{3, 2, 4}
	for i := range x {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Fatalf("x=%v want=%v", x, want)
		}
	}
}

func TestSolve3Singular(t *testing.T) {
	if _, ok := solve3(
		[9]float64{1, 2, 3, 2, 4, 6, 0, 0, 1},
		[3]float64{1, 2, 3},
	); ok {
		t.Fatal("rank deficient system not detected")
	}
	if _, ok := solve3([9]float64{}, [3]float64{}); ok {
		t.Fatal("zero system not detected")
	}
}

func TestSolvePositionAtPlaneIntersection(t *testing.T) {
	// Three orthogonal planes meeting at (1,2,3).
	Q := planeQuadric(1, 0, 0, -1)
	Qy := planeQuadric(0, 1, 0, -2)
	Qz := planeQuadric(0, 0, 1, -3)
	Q.Add(&Qy)
	Q.Add(&Qz)

	p, ok := solvePosition(&Q)
	if !ok {
		t.Fatal("full rank quadric reported singular")
	}
	if math.Abs(p.X-1) > 1e-9 || math.Abs(p.Y-2) > 1e-9 || math.Abs(p.Z-3) > 1e-9 {
		t.Fatalf("position=%v", p)
	}
	if e := Q.VertexError(p); math.Abs(e) > 1e-9 {
		t.Fatalf("error at intersection=%v", e)
	}
}

func TestSolvePositionSinglePlane(t *testing.T) {
	// A rank 1 quadric has no unique minimum.
	Q := planeQuadric(0, 0, 1, 0)
	if _, ok := solvePosition(&Q); ok {
		t.Fatal("rank 1 quadric not reported singular")
	}
}
