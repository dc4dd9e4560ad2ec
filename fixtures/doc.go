// Package fixtures builds deterministic and randomized core.Graph
// instances for tests and for the CLI's "-gen" benchmarking mode.
//
// Adapted from lvlath/builder: that package targets a string-keyed,
// mutable-mode core.Graph (directed/weighted/looped/multigraph toggles
// resolved through a builderConfig); fixtures targets the dense-integer,
// always-simple-undirected core.Graph this module enumerates cliques
// over, so there is no config object — each constructor takes only the
// parameters its topology needs.
package fixtures
