// SPDX-License-Identifier: MIT
package simplify_test

import (
	"math"
	"testing"

	"github.com/arcmesh/qemsimplify/meshbuild"
	"github.com/arcmesh/qemsimplify/simplify"
	"github.com/stretchr/testify/require"
)

// TestStopCriterion covers Scenario E: for any mesh with F0 >= 2 and
// rate 0.5, the returned mesh has |F| <= ceil(0.5*F0).
func TestStopCriterion(t *testing.T) {
	input, err := meshbuild.Build(meshbuild.Octahedron)
	require.NoError(t, err)
	f0 := input.FaceCount()
	require.GreaterOrEqual(t, f0, 2)

	out, err := simplify.Simplify(input, 0.5, simplify.WithTelemetry(false))
	require.NoError(t, err)

	want := int(math.Ceil(0.5 * float64(f0)))
	require.LessOrEqual(t, out.FaceCount(), want)
}

// TestRateZeroIsNoop covers the rate=0.0 boundary behavior: the output
// has exactly the same face count as the input (no contractions
// executed), though normals are always regenerated.
func TestRateZeroIsNoop(t *testing.T) {
	input, err := meshbuild.Build(meshbuild.Octahedron)
	require.NoError(t, err)

	out, err := simplify.Simplify(input, 0.0, simplify.WithTelemetry(false))
	require.NoError(t, err)
	require.Equal(t, input.FaceCount(), out.FaceCount())
	require.Len(t, out.Positions, len(input.Positions))
}

// TestRateOneCollapsesMaximally covers the rate=1.0 boundary: the
// simplifier exits as soon as the face count drops below (i.e. at or
// below) the target, here 0, so it runs until no further
// non-degenerate contraction exists.
func TestRateOneCollapsesMaximally(t *testing.T) {
	input, err := meshbuild.Build(meshbuild.Octahedron)
	require.NoError(t, err)

	out, err := simplify.Simplify(input, 1.0, simplify.WithTelemetry(false))
	require.NoError(t, err)
	require.Less(t, out.FaceCount(), input.FaceCount())
}

// TestSingularQuadricScenario covers Scenario D: simplifying a planar
// quad (two coplanar triangles sharing a diagonal) contracts the
// shared edge via a midpoint placement at cost 0. The quad's only two
// vertices not on that edge sit opposite one another (both apexes
// coincide once contracted out to a single triangle's worth of space),
// so after this one contraction every remaining edge fails the link
// condition and the loop stops rather than over-collapsing.
func TestSingularQuadricScenario(t *testing.T) {
	input, err := meshbuild.Build(meshbuild.PlanarQuad)
	require.NoError(t, err)
	require.Equal(t, 2, input.FaceCount())

	out, err := simplify.Simplify(input, 0.5, simplify.WithTelemetry(false))
	require.NoError(t, err)
	require.LessOrEqual(t, out.FaceCount(), 2)
	require.Less(t, out.FaceCount(), input.FaceCount())
}

// TestInvalidRatePanics asserts rate outside [0,1] is a fail-fast
// programmer error (spec §7).
func TestInvalidRatePanics(t *testing.T) {
	input, err := meshbuild.Build(meshbuild.Tetrahedron)
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _ = simplify.Simplify(input, -0.1)
	})
	require.Panics(t, func() {
		_, _ = simplify.Simplify(input, 1.1)
	})
}

// TestInvalidEpsilonPanics asserts a non-positive Epsilon option is a
// fail-fast programmer error, surfaced when the option is applied.
func TestInvalidEpsilonPanics(t *testing.T) {
	input, err := meshbuild.Build(meshbuild.Tetrahedron)
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _ = simplify.Simplify(input, 0.5, simplify.WithEpsilon(0))
	})
	require.Panics(t, func() {
		_, _ = simplify.Simplify(input, 0.5, simplify.WithEpsilon(-1))
	})
}
