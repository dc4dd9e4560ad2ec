// Package maxclique enumerates every maximal clique of an undirected simple
// graph using the pivoted Bron–Kerbosch algorithm over a degeneracy
// ordering, and can optionally record the recursion tree it explores.
//
// Under the hood, the work is organized into:
//
//	core/       — dense-integer adjacency-list graph store
//	degeneracy/ — bucket-queue degeneracy ordering
//	clique/     — enumeration state, recursive enumerator, outer driver
//	recorder/   — optional search-tree recorder, CSV and Graphviz export
//	graphio/    — input parsing and report formatting
//	fixtures/   — deterministic and randomized graph generators for tests
//	cmd/maxclique — command-line entry point
//
// A minimal run looks like:
//
//	g, _ := graphio.Read(os.Stdin)
//	ord, _ := degeneracy.Order(g)
//	res, _ := clique.Run(g, ord, nil)
//	fmt.Println(res.Count)
//
//	go get github.com/katalvlaran/maxclique
package maxclique
