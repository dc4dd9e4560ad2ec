// Package graphio is the CLI's I/O boundary, kept free of algorithmic
// content: it reads the `N M` / edge-pair input format into a
// *core.Graph, and renders a clique.Run (plus, optionally, a
// recorder.Tree) result as the CLI's fixed output.
package graphio
