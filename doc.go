// Package qemsimplify is a triangle-mesh simplifier built on Quadric
// Error Metrics (QEM) and iterative half-edge contraction.
//
// Given a manifold indexed triangle mesh and a target reduction rate
// r in [0,1], Simplify produces a mesh with roughly (1-r)*F0 faces,
// collapsing the lowest-error edge first at every step and placing
// the resulting vertex where it minimizes total squared distance to
// the planes of every triangle it ever touched.
//
// Everything lives under flat, root-level subpackages:
//
//	mesh/      — the indexed parallel-array mesh exchanged at the boundary
//	halfedge/  — the half-edge topology: vertices, faces, contraction
//	quadric/   — the 4x4 error quadric, optimal placement, cost
//	simplify/  — the degeneracy predicate and the greedy scheduler
//	meshbuild/ — fixture constructors used by the test suite
//	config/    — YAML-driven tuning for Simplify
//
//	go get github.com/arcmesh/qemsimplify
package qemsimplify
