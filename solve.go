package meshsimp

import (
	"github.com/nat-n/geom"
	"math"
)

// Pivots below this magnitude make the system near-singular, which is common
// near mesh boundaries where the merged quadric is rank deficient.
const pivot_epsilon = 1e-12

// solvePosition finds the point minimizing the quadratic form of Q, by
// solving the 3x3 system extracted from its upper-left block against the
// negated last column. ok is false when the system is near-singular, in
// which case the caller is expected to fall back to the edge midpoint.
func solvePosition(Q *geom.SymMat4) (p geom.Vec3, ok bool) {
	a := [9]float64{
		Q[0], Q[1], Q[2],
		Q[1], Q[4], Q[5],
		Q[2], Q[5], Q[7],
	}
	b := [3]float64{-Q[3], -Q[6], -Q[8]}
	x, ok := solve3(a, b)
	if !ok {
		return
	}
	return geom.Vec3{x[0], x[1], x[2]}, true
}

// solve3 solves a*x=b for a row-major 3x3 matrix by Gaussian elimination
// with partial pivoting.
func solve3(a [9]float64, b [3]float64) (x [3]float64, ok bool) {
	for k := 0; k < 3; k++ {
		// Pivot on the largest absolute value in the current column.
		piv := k
		max_abs := math.Abs(a[3*k+k])
		for i := k + 1; i < 3; i++ {
			if v := math.Abs(a[3*i+k]); v > max_abs {
				max_abs = v
				piv = i
			}
		}
		if max_abs < pivot_epsilon {
			return
		}
		if piv != k {
			for j := k; j < 3; j++ {
				a[3*k+j], a[3*piv+j] = a[3*piv+j], a[3*k+j]
			}
			b[k], b[piv] = b[piv], b[k]
		}

		// Eliminate rows below.
		pivot := a[3*k+k]
		for i := k + 1; i < 3; i++ {
			f := a[3*i+k] / pivot
			if f == 0 {
				continue
			}
			a[3*i+k] = 0
			for j := k + 1; j < 3; j++ {
				a[3*i+j] -= f * a[3*k+j]
			}
			b[i] -= f * b[k]
		}
	}

	// Back substitution.
	for i := 2; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < 3; j++ {
			sum -= a[3*i+j] * x[j]
		}
		x[i] = sum / a[3*i+i]
	}
	return x, true
}
