// SPDX-License-Identifier: MIT
// Package halfedge implements the half-edge mesh: vertex, face, and
// half-edge records, construction from and export to an indexed
// triangle mesh, and the atomic edge-contraction mutation.
package halfedge

import "errors"

// Sentinel errors returned by NewFromIndexed. These are input errors,
// surfaced at the construction boundary and never cause a panic.
var (
	// ErrDegenerateTriangle indicates a triangle whose three vertices are
	// collinear (zero cross product), detected while building its face.
	ErrDegenerateTriangle = errors.New("halfedge: degenerate (collinear) triangle")

	// ErrNonManifoldEdge indicates a directed edge claimed by a second
	// triangle: either more than two triangles share an unordered edge,
	// violating the at-most-two-triangles precondition, or two triangles
	// share it with the same winding.
	ErrNonManifoldEdge = errors.New("halfedge: more than two triangles share an edge")
)

// Programmer-error panic messages. These name preconditions that a
// correctly operating scheduler never violates; a violation means the
// mesh is already inconsistent and is a fatal assertion, not a
// recoverable error.
const (
	panicUnknownEdge         = "halfedge: Contract called with unknown half-edge"
	panicVertexIDInUse       = "halfedge: newVertex.ID already live in mesh"
	panicUnknownVertex       = "halfedge: reference to a vertex not present in mesh"
	panicUnknownFace         = "halfedge: deletion of a face not present in mesh"
	panicUnknownEdgeDeletion = "halfedge: deletion of a half-edge not present in mesh"
)
