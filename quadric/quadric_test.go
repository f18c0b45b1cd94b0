// SPDX-License-Identifier: MIT
package quadric_test

import (
	"testing"

	"github.com/arcmesh/qemsimplify/quadric"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

// TestAdditivity exercises Q(v_new) = Q(v0) + Q(v1): the sum of two
// planes' quadrics, evaluated at a point lying on both planes, must
// cost zero.
func TestAdditivity(t *testing.T) {
	n1 := mgl64.Vec3{0, 0, 1}.Normalize()
	n2 := mgl64.Vec3{1, 0, 0}.Normalize()
	p := mgl64.Vec3{1, 2, 3}

	q1 := quadric.NewFromPlane(n1, p)
	q2 := quadric.NewFromPlane(n2, p)
	sum := q1.Add(q2)

	// cost at the shared point must equal the sum of each plane's
	// individual squared distance (both are zero here since p lies on
	// both planes by construction).
	require.InDelta(t, 0, sum.Cost(p), 1e-9)
}

// TestSingularFallback covers Scenario D: two coplanar triangles
// (identical normal) produce a quadric whose upper 3x3 is singular
// along the shared plane, so OptimalPlacement must fall back to the
// midpoint with cost 0.
func TestSingularFallback(t *testing.T) {
	normal := mgl64.Vec3{0, 0, 1}
	p := mgl64.Vec3{0, 0, 0}
	q := quadric.NewFromPlane(normal, p)

	v0 := mgl64.Vec3{0, 0, 0}
	v1 := mgl64.Vec3{1, 1, 0}
	pos, cost := q.OptimalPlacement(v0, v1, quadric.DefaultEpsilon)

	require.InDelta(t, 0, cost, 1e-9)
	require.InDelta(t, 0.5, pos.X(), 1e-9)
	require.InDelta(t, 0.5, pos.Y(), 1e-9)
	require.InDelta(t, 0, pos.Z(), 1e-9)
}

// TestOptimalPlacementWellConditioned checks that a quadric built from
// three independent planes (a corner) places the optimal vertex at
// their common intersection point with near-zero cost.
func TestOptimalPlacementWellConditioned(t *testing.T) {
	corner := mgl64.Vec3{2, 3, 4}
	planes := []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	var q quadric.Quadric
	first := true
	for _, n := range planes {
		pq := quadric.NewFromPlane(n, corner)
		if first {
			q = pq
			first = false
		} else {
			q = q.Add(pq)
		}
	}

	pos, cost := q.OptimalPlacement(mgl64.Vec3{}, mgl64.Vec3{}, quadric.DefaultEpsilon)
	require.InDelta(t, corner.X(), pos.X(), 1e-6)
	require.InDelta(t, corner.Y(), pos.Y(), 1e-6)
	require.InDelta(t, corner.Z(), pos.Z(), 1e-6)
	require.InDelta(t, 0, cost, 1e-6)
}
