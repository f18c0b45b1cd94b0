// SPDX-License-Identifier: MIT
package halfedge

import (
	"fmt"

	"github.com/arcmesh/qemsimplify/mesh"
)

// NewFromIndexed builds a half-edge mesh from an indexed triangle mesh.
// Vertex ids equal their position index [0,N). For each triangle
// (i,j,k), in order, the three half-edges are obtained or created via
// getOrCreateEdge, wired into a next-cycle, and registered under a
// canonicalized face.
//
// Returns ErrDegenerateTriangle for a collinear triangle and
// ErrNonManifoldEdge if a directed edge is claimed by more than one
// triangle (more than two triangles sharing the unordered edge, or two
// sharing it with the same winding).
func NewFromIndexed(input mesh.Indexed) (*Mesh, error) {
	m := newMesh()
	for i, p := range input.Positions {
		m.Vertices[i] = &Vertex{ID: i, Position: p}
	}

	triangles := input.Triangles()
	for t := 0; t < len(triangles); t += 3 {
		ia, ib, ic := int(triangles[t]), int(triangles[t+1]), int(triangles[t+2])
		va, vb, vc := m.Vertices[ia], m.Vertices[ib], m.Vertices[ic]

		for _, pair := range [][2]*Vertex{{va, vb}, {vb, vc}, {vc, va}} {
			if existing, ok := m.HalfEdges[EdgeKey{Tail: pair[0].ID, Head: pair[1].ID}]; ok && existing.Face != nil {
				return nil, fmt.Errorf("NewFromIndexed: triangle %d: edge (%d,%d): %w", t/3, pair[0].ID, pair[1].ID, ErrNonManifoldEdge)
			}
		}

		if _, err := m.addTriangle(va, vb, vc); err != nil {
			return nil, fmt.Errorf("NewFromIndexed: triangle %d: %w", t/3, err)
		}
	}

	return m, nil
}
