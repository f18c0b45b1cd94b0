// SPDX-License-Identifier: MIT
// Package mesh defines the indexed-triangle-mesh boundary type shared with
// the OBJ loader, renderer, and scene collaborators (out of core scope).
package mesh

import "errors"

// Sentinel errors returned by NewIndexed on malformed input. These are input
// errors, not programmer errors: they are surfaced at the construction
// boundary and never cause a panic.
var (
	// ErrNoPositions indicates the mesh has zero vertex positions.
	ErrNoPositions = errors.New("mesh: positions must be non-empty")

	// ErrBadIndexCount indicates the index list length is not a multiple of 3.
	ErrBadIndexCount = errors.New("mesh: indices length must be a multiple of 3")

	// ErrImplicitTriangleCount indicates indices were omitted but the
	// position count is not itself a multiple of 3.
	ErrImplicitTriangleCount = errors.New("mesh: implicit triangles require len(positions) % 3 == 0")

	// ErrAttributeLengthMismatch indicates normals or texture coordinates
	// were supplied but do not align 1:1 with positions.
	ErrAttributeLengthMismatch = errors.New("mesh: attribute length does not match position count")

	// ErrIndexOutOfRange indicates an index references a position that does not exist.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")
)
