// Package recorder implements the optional search-tree recorder: it
// satisfies clique.RecorderHook structurally (without importing clique)
// and accumulates every recursive invocation — real
// and pivot-pruned shadow alike — into a Tree that can be exported as
// CSV or, optionally, rendered as a Graphviz diagram.
//
// Tree.Node carries one recursive invocation's bookkeeping directly —
// its X/P window sizes, the candidate that produced it, and the clique
// it was reached with; ExportCSV writes one row per node in that same
// shape, plus a synthetic root row aggregating the outer invocations.
package recorder
