// SPDX-License-Identifier: MIT
package halfedge_test

import (
	"testing"

	"github.com/arcmesh/qemsimplify/halfedge"
	"github.com/arcmesh/qemsimplify/mesh"
	"github.com/arcmesh/qemsimplify/meshbuild"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

// TestContract_HexagonFan verifies Scenario A: contracting the hub
// edge of the ten-triangle disk fixture yields exactly nine vertices,
// thirty-two half-edges, eight faces, and the expected face list.
func TestContract_HexagonFan(t *testing.T) {
	indexed, err := meshbuild.HexagonFan()
	require.NoError(t, err)

	m, err := halfedge.NewFromIndexed(indexed)
	require.NoError(t, err)
	require.Len(t, m.Vertices, 10)
	require.Len(t, m.Faces, 10)

	v0, v1 := m.Vertices[0], m.Vertices[1]
	edge01 := m.HalfEdges[halfedge.EdgeKey{Tail: v0.ID, Head: v1.ID}]
	require.NotNil(t, edge01)

	vNew := &halfedge.Vertex{ID: 10, Position: v0.Position.Add(v1.Position).Mul(0.5)}
	require.NoError(t, m.Contract(edge01, vNew))

	require.Len(t, m.Vertices, 9)
	require.Len(t, m.HalfEdges, 32)
	require.Len(t, m.Faces, 8)

	want := map[halfedge.FaceKey]bool{
		{A: 2, B: 3, C: 10}:  true,
		{A: 3, B: 4, C: 10}:  true,
		{A: 4, B: 5, C: 10}:  true,
		{A: 5, B: 6, C: 10}:  true,
		{A: 6, B: 7, C: 10}:  true,
		{A: 7, B: 8, C: 10}:  true,
		{A: 8, B: 9, C: 10}:  true,
		{A: 2, B: 10, C: 9}:  true,
	}
	for key := range m.Faces {
		require.True(t, want[key], "unexpected face %v", key)
		delete(want, key)
	}
	require.Empty(t, want, "missing expected faces")
}

// TestFaceCanonicalization covers Scenario B: rotating a triangle's
// vertices yields the same canonical face and hash; reversing winding
// does not.
func TestFaceCanonicalization(t *testing.T) {
	base := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	rotations := [][]uint32{
		{0, 1, 2},
		{1, 2, 0},
		{2, 0, 1},
	}
	var keys []halfedge.FaceKey
	for _, indices := range rotations {
		indexed, err := mesh.NewIndexed(base, nil, nil, indices, mgl64.Ident4())
		require.NoError(t, err)
		m, err := halfedge.NewFromIndexed(indexed)
		require.NoError(t, err)
		require.Len(t, m.Faces, 1)
		for k := range m.Faces {
			keys = append(keys, k)
		}
	}
	require.Equal(t, keys[0], keys[1])
	require.Equal(t, keys[1], keys[2])

	reversed, err := mesh.NewIndexed(base, nil, nil, []uint32{0, 2, 1}, mgl64.Ident4())
	require.NoError(t, err)
	m, err := halfedge.NewFromIndexed(reversed)
	require.NoError(t, err)
	var reversedKey halfedge.FaceKey
	for k := range m.Faces {
		reversedKey = k
	}
	require.NotEqual(t, keys[0], reversedKey)
}

// TestCollinearTriangleRejected covers Scenario C: three collinear
// positions make a zero cross product and must be rejected at
// construction.
func TestCollinearTriangleRejected(t *testing.T) {
	positions := []mgl64.Vec3{{-1, -1, 0}, {0, -1, 0}, {1, -1, 0}}
	indexed, err := mesh.NewIndexed(positions, nil, nil, []uint32{0, 1, 2}, mgl64.Ident4())
	require.NoError(t, err)

	_, err = halfedge.NewFromIndexed(indexed)
	require.ErrorIs(t, err, halfedge.ErrDegenerateTriangle)
}

// TestTwinDistinctness covers Scenario F: every half-edge hashes
// differently from its twin, and both are registered.
func TestTwinDistinctness(t *testing.T) {
	indexed, err := meshbuild.Tetrahedron()
	require.NoError(t, err)
	m, err := halfedge.NewFromIndexed(indexed)
	require.NoError(t, err)

	for key, e := range m.HalfEdges {
		twinKey := halfedge.EdgeKey{Tail: key.Head, Head: key.Tail}
		twin, ok := m.HalfEdges[twinKey]
		require.True(t, ok, "twin of %v not registered", key)
		require.NotEqual(t, key, twinKey)
		require.Same(t, e.Twin, twin)
		require.Same(t, e, twin.Twin)
	}
}

// TestRoundTrip verifies that building from and exporting back to an
// indexed mesh, without any contraction, preserves the positions (as a
// multiset, order-insensitive) and the face count, and that every
// exported normal has unit length.
func TestRoundTrip(t *testing.T) {
	indexed, err := meshbuild.Tetrahedron()
	require.NoError(t, err)

	m, err := halfedge.NewFromIndexed(indexed)
	require.NoError(t, err)

	out, err := m.Export(mgl64.Ident4())
	require.NoError(t, err)

	require.Len(t, out.Positions, len(indexed.Positions))
	require.ElementsMatch(t, indexed.Positions, out.Positions)

	require.Equal(t, indexed.FaceCount(), out.FaceCount())
	for i, n := range out.Normals {
		require.InDelta(t, 1.0, n.Len(), 1e-9, "normal %d not unit length", i)
	}
}
