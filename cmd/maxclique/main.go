// Command maxclique enumerates maximal cliques in an undirected graph
// using pivoted Bron-Kerbosch search over a degeneracy ordering. It reads
// a graph from standard input (or synthesizes one with -gen), prints the
// clique count and elapsed time, and optionally records and exports the
// search tree that produced them.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/maxclique/clique"
	"github.com/katalvlaran/maxclique/core"
	"github.com/katalvlaran/maxclique/degeneracy"
	"github.com/katalvlaran/maxclique/fixtures"
	"github.com/katalvlaran/maxclique/graphio"
	"github.com/katalvlaran/maxclique/recorder"
)

const (
	defaultCSVPath = "search_tree.csv"
	defaultDOTPath = "search_tree.png"
)

// options holds the result of scanning argv per the flag grammar: a
// linear pass recognizing -e/--export-tree (optionally followed by a
// filename), -gen (a generator spec), and -dot (optionally followed by
// a filename, meaningful only alongside -e). Anything else is ignored,
// matching the reference loop's forward-compatible tolerance for
// unknown flags.
type options struct {
	exportTree   bool
	csvPath      string
	dotRequested bool
	dotPath      string
	genSpec      string
}

func parseArgs(argv []string) options {
	opt := options{csvPath: defaultCSVPath, dotPath: defaultDOTPath}

	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "-e", "--export-tree":
			opt.exportTree = true
			if i+1 < len(argv) && !strings.HasPrefix(argv[i+1], "-") {
				i++
				opt.csvPath = argv[i]
			}
		case "-dot":
			opt.dotRequested = true
			if i+1 < len(argv) && !strings.HasPrefix(argv[i+1], "-") {
				i++
				opt.dotPath = argv[i]
			}
		case "-gen":
			if i+1 < len(argv) {
				i++
				opt.genSpec = argv[i]
			}
		}
	}

	return opt
}

// generateFixture parses -gen's "n,p" or "n,k:regular" grammar and
// builds the corresponding fixture graph, sparing the caller a stdin
// graph file for quick interactive benchmarking.
func generateFixture(spec string) (*core.Graph, error) {
	parts := strings.SplitN(spec, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf(`-gen %q: expected "n,p" or "n,k:regular"`, spec)
	}

	n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("-gen %q: invalid vertex count: %w", spec, err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rest := strings.TrimSpace(parts[1])

	if strings.HasSuffix(rest, ":regular") {
		k, err := strconv.Atoi(strings.TrimSuffix(rest, ":regular"))
		if err != nil {
			return nil, fmt.Errorf("-gen %q: invalid regular degree: %w", spec, err)
		}

		return fixtures.RandomRegular(n, k, rng)
	}

	p, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return nil, fmt.Errorf("-gen %q: invalid edge probability: %w", spec, err)
	}

	return fixtures.RandomSparse(n, p, rng)
}

// buildGraph resolves the input graph: -gen synthesizes a fixture when
// given, otherwise the graph is read from standard input.
func buildGraph(opt options) (*core.Graph, error) {
	if opt.genSpec != "" {
		return generateFixture(opt.genSpec)
	}

	return graphio.Read(os.Stdin)
}

func exportCSV(tree *recorder.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	return tree.ExportCSV(f)
}

// exportDOT renders the recorded tree to path, choosing SVG when the
// filename ends in .svg and PNG otherwise.
func exportDOT(ctx context.Context, tree *recorder.Tree, path string) error {
	var (
		img []byte
		err error
	)

	if strings.HasSuffix(strings.ToLower(path), ".svg") {
		img, err = tree.RenderSVG(ctx)
	} else {
		img, err = tree.RenderPNG(ctx)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, img, 0o644)
}

// run executes one end-to-end invocation: parse flags, obtain the graph,
// order it, enumerate its maximal cliques, report, and (when requested)
// export the search tree. It returns the process exit code.
func run(ctx context.Context, logger *log.Logger, argv []string) int {
	opt := parseArgs(argv)

	g, err := buildGraph(opt)
	if err != nil {
		logger.Error("failed to read input graph", "err", err)
		return 1
	}

	ord, err := degeneracy.Order(g)
	if err != nil {
		logger.Error("failed to compute degeneracy ordering", "err", err)
		return 1
	}

	var tree *recorder.Tree
	var hook clique.RecorderHook
	if opt.exportTree {
		tree = recorder.NewTree()
		hook = tree
		fmt.Println("Search tree tracking enabled")
	}

	start := time.Now()
	result, err := clique.Run(g, ord, hook)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error("enumeration failed", "err", err)
		return 1
	}

	report := graphio.Report{Count: result.Count, Elapsed: elapsed}
	if tree != nil {
		report.Recorded = true
		report.TotalNodes, report.Explored, report.Pruned, report.Leaves, report.MaxDepth, report.PruningRatio = tree.Stats()
	}

	if err := report.WriteTo(os.Stdout); err != nil {
		logger.Error("failed to write report", "err", err)
		return 1
	}

	if tree == nil {
		return 0
	}

	// A CSV (or DOT) export failure is reported but does not change the
	// exit code: the enumeration already succeeded and its result was
	// already printed above. Exit code 1 is reserved for the input-read,
	// ordering, enumeration, and report-write failures handled earlier.
	if err := exportCSV(tree, opt.csvPath); err != nil {
		logger.Error("failed to export search tree", "path", opt.csvPath, "err", err)
	}

	if opt.dotRequested {
		if err := exportDOT(ctx, tree, opt.dotPath); err != nil {
			logger.Error("failed to render search tree", "path", opt.dotPath, "err", err)
		}
	}

	return 0
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maxclique",
		Short: "Enumerate maximal cliques with pivoted Bron-Kerbosch over a degeneracy ordering",
		Long: `maxclique reads an undirected graph from standard input, orders its
vertices by degeneracy, and enumerates every maximal clique with pivoted
Bron-Kerbosch. -e/--export-tree additionally records the recursion's
search tree and writes it to CSV; -dot renders it as an image alongside.`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           log.InfoLevel,
			})

			if code := run(cmd.Context(), logger, args); code != 0 {
				os.Exit(code)
			}

			return nil
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
