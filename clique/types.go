// Package clique implements the pivoted Bron–Kerbosch enumeration of
// maximal cliques, driven by a degeneracy ordering.
//
// The package is organized by concern: state.go holds the shared vl/pos
// arrays and the set-restriction primitives; enumerate.go holds the
// recursive enumerator (pivot selection, candidate restriction, and the
// optional pivot-pruned shadow exploration); driver.go holds the outer
// loop over the degeneracy order.
//
// vl, pos, and R are allocated once per Run call and reused across the
// whole recursion; each recursive call still allocates its own pivot-mark
// and candidate slices.
package clique

import "errors"

// ErrGraphNil is returned by Run when g is nil.
var ErrGraphNil = errors.New("clique: graph is nil")

// ErrOrderingMismatch is returned by Run when ord was not computed for a
// graph with the same vertex count as g.
var ErrOrderingMismatch = errors.New("clique: ordering does not match graph size")

// NoCandidate is the sentinel used in place of a real vertex ID wherever
// none applies yet: the recorded candidate_vertex for outer roots, and
// internal bookkeeping for "no pivot chosen yet".
const NoCandidate = -1

// Result is the outcome of Run: the number of maximal cliques found.
type Result struct {
	Count int
}

// RecorderHook lets callers observe every recursive invocation without
// clique depending on the recorder package. recorder.Tree implements this
// interface structurally; clique never imports recorder.
type RecorderHook interface {
	// Enter is called on entry to every recursive invocation, including
	// outer roots (parent == RootParent for those). It returns the new
	// node's ID, later passed back to Exit.
	Enter(parent int64, depth int, candidate int, r []int, xSize, pSize int, prunedByPivot bool) int64

	// Exit is called when the invocation identified by nodeID returns,
	// reporting how many (non-shadow) cliques were found in its subtree.
	Exit(nodeID int64, cliques int)
}

// RootParent is the parent ID RecorderHook.Enter receives for every outer
// invocation: real roots carry parent_id = -1, distinguishing them from
// any real (non-negative) node ID.
const RootParent int64 = -1
