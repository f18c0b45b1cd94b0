// SPDX-License-Identifier: MIT
package quadric

import "github.com/go-gl/mathgl/mgl64"

// DefaultEpsilon is the singularity threshold used by OptimalPlacement
// when no Options override is supplied: |det(A)| or |d| below this
// triggers the midpoint fallback.
const DefaultEpsilon = 1.0e-3

// Quadric is a per-vertex 4x4 symmetric error quadric: Q = sum of
// outer(plane, plane) over the planes of incident faces.
type Quadric struct {
	m mgl64.Mat4
}

// NewFromPlane builds the rank-1 quadric for a single oriented plane
// through position with the given unit normal: plane = (n, -n·x),
// Q = outer_product(plane, plane).
func NewFromPlane(normal, position mgl64.Vec3) Quadric {
	plane := mgl64.Vec4{normal.X(), normal.Y(), normal.Z(), -normal.Dot(position)}
	return Quadric{m: outer(plane)}
}

func outer(p mgl64.Vec4) mgl64.Mat4 {
	var m mgl64.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[col*4+row] = p[row] * p[col]
		}
	}
	return m
}

// Add returns the quadric sum, the propagation rule Q(v_new) =
// Q(v0) + Q(v1).
func (q Quadric) Add(other Quadric) Quadric {
	var sum mgl64.Mat4
	for i := range sum {
		sum[i] = q.m[i] + other.m[i]
	}
	return Quadric{m: sum}
}

// Cost evaluates v^T Q v for a homogeneous point v = (x,y,z,1).
func (q Quadric) Cost(position mgl64.Vec3) float64 {
	v := mgl64.Vec4{position.X(), position.Y(), position.Z(), 1}
	qv := q.m.Mul4x1(v)
	return v.Dot(qv)
}

// submatrices extracts A (upper-left 3x3), b (first three entries of
// column 3), and d (Q[3][3]) from the quadric, per spec §4.3.
func (q Quadric) submatrices() (a [3][3]float64, b [3]float64, d float64) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			a[row][col] = q.m.At(row, col)
		}
		b[row] = q.m.At(row, 3)
	}
	d = q.m.At(3, 3)
	return a, b, d
}

// OptimalPlacement computes the position that minimizes this quadric's
// cost and the cost at that position, per spec §4.3. When the upper
// 3x3 submatrix or d is singular within epsilon, it falls back to the
// midpoint of v0 and v1 with cost 0 — v0/v1 are the edge endpoints the
// candidate quadric was built from, needed only for that fallback.
func (q Quadric) OptimalPlacement(v0, v1 mgl64.Vec3, epsilon float64) (position mgl64.Vec3, cost float64) {
	a, b, d := q.submatrices()

	detA, ok := det3(a)
	if !ok || absf(detA) < epsilon || absf(d) < epsilon {
		mid := v0.Add(v1).Mul(0.5)
		return mid, 0
	}

	// Solve A·x = -b directly rather than reconstructing a fabricated
	// D^-1 column (spec §9's open question resolves in favor of the
	// direct, more numerically stable form).
	negB := [3]float64{-b[0], -b[1], -b[2]}
	x, ok := solve3(a, negB)
	if !ok {
		mid := v0.Add(v1).Mul(0.5)
		return mid, 0
	}

	position = mgl64.Vec3{x[0], x[1], x[2]}
	return position, q.Cost(position)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
