// Package core defines the Graph store: a dense-integer, single-threaded
// adjacency-list graph on vertices 0..n-1.
//
// Unlike lvlath's string-keyed, mutex-guarded core.Graph, this Graph is
// deliberately not safe for concurrent use and carries no per-vertex
// payload: the clique enumerator (package clique) needs a graph it can
// reorder in place, one goroutine at a time, with O(1) vertex-to-slice
// addressing.
//
// Invariant: at rest, adj[v] is a permutation of the true neighbor set of
// v. AdjMut grants the enumerator direct, mutable access to that slice so
// it can repartition it without allocating; the enumerator is responsible
// for restoring the set (not necessarily the order) on return.
package core
