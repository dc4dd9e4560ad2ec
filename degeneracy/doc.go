// Package degeneracy computes a degeneracy ordering of a core.Graph: a
// permutation in which each vertex, at the moment it is emitted, has
// minimum residual degree among vertices not yet emitted.
//
// The ordering drives clique's outer loop — it bounds the size of the P
// set any single outer invocation ever has to branch over, which is what
// keeps pivoted Bron–Kerbosch practical on real graphs.
//
// Implementation: a bucket queue keyed by residual degree, with O(1)
// removal via an intrusive doubly linked list per bucket. After emitting
// a vertex from bucket d, the scan resumes at max(0, d-1) rather than
// restarting from 0, since decrementing a neighbor's degree can only ever
// move it to d-1.
//
// Complexity: O(V+E) time, O(V) space.
package degeneracy
