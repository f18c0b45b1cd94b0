// SPDX-License-Identifier: MIT
// Package meshbuild assembles deterministic mesh.Indexed fixtures used
// by this module's own tests and examples.
package meshbuild

import (
	"fmt"

	"github.com/arcmesh/qemsimplify/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// Constructor produces one deterministic mesh.Indexed fixture. Unlike
// the teacher's graph Constructor (which mutates a shared *core.Graph
// across a composed sequence), each fixture here is a complete,
// self-contained mesh, so Constructor returns a finished value rather
// than mutating shared state — the one-orchestrator, many-constructors
// shape is kept; the progressive-mutation contract is not, since there
// is nothing here to compose incrementally.
type Constructor func() (mesh.Indexed, error)

// Build runs a single constructor and wraps any error with context,
// mirroring the teacher's BuildGraph error-wrapping convention.
func Build(cons Constructor) (mesh.Indexed, error) {
	m, err := cons()
	if err != nil {
		return mesh.Indexed{}, fmt.Errorf("meshbuild.Build: %w", err)
	}
	return m, nil
}

// HexagonFan returns the ten-vertex, ten-triangle disk fixture: a hub
// edge v0-v1 surrounded by an eight-vertex rim. Contracting the hub
// edge replaces the ten triangles with eight, matching the expected
// post-contraction face list used as a regression fixture.
//
// Vertex layout (index = id): 0:(1,0,0) 1:(2,0,0) hub; 2:(0.5,-1,0)
// 3:(1.5,-1,0) 4:(2.5,-1,0) 5:(3,0,0) 6:(2.5,1,0) 7:(1.5,1,0)
// 8:(0.5,1,0) 9:(0,0,0) rim, in CCW order starting bottom-left.
func HexagonFan() (mesh.Indexed, error) {
	positions := []mgl64.Vec3{
		{1, 0, 0},     // 0: v0, hub
		{2, 0, 0},     // 1: v1, hub
		{0.5, -1, 0},  // 2
		{1.5, -1, 0},  // 3
		{2.5, -1, 0},  // 4
		{3, 0, 0},     // 5
		{2.5, 1, 0},   // 6
		{1.5, 1, 0},   // 7
		{0.5, 1, 0},   // 8
		{0, 0, 0},     // 9
	}
	indices := []uint32{
		0, 1, 7,
		0, 7, 8,
		0, 8, 9,
		0, 9, 2,
		0, 2, 3,
		0, 3, 1,
		1, 3, 4,
		1, 4, 5,
		1, 5, 6,
		1, 6, 7,
	}
	return mesh.NewIndexed(positions, nil, nil, indices, mgl64.Ident4())
}

// PlanarQuad returns two coplanar triangles sharing a diagonal, used
// to exercise the singular-quadric midpoint fallback: all four
// vertices lie on z=0 and share one face normal, so the summed
// quadric's upper-left 3x3 is singular along the shared plane.
//
// Vertex layout: 0:(0,0,0) 1:(1,0,0) 2:(1,1,0) 3:(0,1,0); diagonal
// is the shared edge 0-2.
func PlanarQuad() (mesh.Indexed, error) {
	positions := []mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
	indices := []uint32{
		0, 1, 2,
		0, 2, 3,
	}
	return mesh.NewIndexed(positions, nil, nil, indices, mgl64.Ident4())
}

// Tetrahedron returns a closed, fully-manifold four-triangle solid
// (no boundary), used to exercise Export's weighted-vertex-normal
// fan walk on every vertex without hitting an open (boundary) fan.
func Tetrahedron() (mesh.Indexed, error) {
	positions := []mgl64.Vec3{
		{1, 1, 1},
		{-1, -1, 1},
		{-1, 1, -1},
		{1, -1, -1},
	}
	indices := []uint32{
		0, 2, 1,
		0, 1, 3,
		0, 3, 2,
		1, 2, 3,
	}
	return mesh.NewIndexed(positions, nil, nil, indices, mgl64.Ident4())
}

// Octahedron returns a closed, fully-manifold eight-triangle solid (6
// vertices, 12 edges, 8 faces — Euler characteristic 2), used as a
// larger fixture for exercising repeated contraction under Simplify.
func Octahedron() (mesh.Indexed, error) {
	positions := []mgl64.Vec3{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 1, 0},
		{0, -1, 0},
		{0, 0, 1},
		{0, 0, -1},
	}
	indices := []uint32{
		0, 4, 2,
		2, 4, 1,
		1, 4, 3,
		3, 4, 0,
		2, 5, 0,
		1, 5, 2,
		3, 5, 1,
		0, 5, 3,
	}
	return mesh.NewIndexed(positions, nil, nil, indices, mgl64.Ident4())
}
