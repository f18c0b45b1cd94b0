// SPDX-License-Identifier: MIT
// Package simplify implements the greedy, quadric-driven edge-collapse
// scheduler: candidate generation, the degeneracy (link-condition)
// predicate, the priority-queue-with-stale-entries loop, and the
// single public entry point, Simplify.
package simplify

// Programmer-error panic messages (spec §7: rate out of [0,1] and
// invalid option arguments are fail-fast preconditions, not
// recoverable errors).
const (
	panicRateRange  = "simplify: rate must be in [0,1]"
	panicBadEpsilon = "simplify: Epsilon must be > 0"
	panicNilLogger  = "simplify: Logger must not be nil"
)
