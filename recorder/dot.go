package recorder

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ToDOT renders the recorded tree as Graphviz DOT source. Pivot-pruned
// shadow branches are drawn dashed and grey so a reader can contrast
// explored against skipped search space; this is a supplement to the CSV
// export, never a replacement for it.
func (t *Tree) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph searchtree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=10];\n\n")

	for _, n := range t.nodes {
		label := nodeLabel(n)
		attrs := fmt.Sprintf("label=%q", label)
		if n.PrunedByPivot {
			attrs += `, style="rounded,filled,dashed", fillcolor=lightgrey, fontcolor=gray40`
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", n.NodeID, attrs)
		if n.ParentID >= 0 {
			fmt.Fprintf(&buf, "  %d -> %d;\n", n.ParentID, n.NodeID)
		}
	}

	buf.WriteString("}\n")

	return buf.String()
}

func nodeLabel(n *Node) string {
	clique := make([]string, len(n.CurrentClique))
	for i, v := range n.CurrentClique {
		clique[i] = fmt.Sprintf("%d", v)
	}

	return fmt.Sprintf("R={%s}\\nx=%d p=%d\\ncliques=%d", strings.Join(clique, ","), n.XSize, n.PSize, n.CliquesInSubtree)
}

// RenderPNG renders the recorded tree to a PNG image using Graphviz.
func (t *Tree) RenderPNG(ctx context.Context) ([]byte, error) {
	return t.render(ctx, graphviz.PNG)
}

// RenderSVG renders the recorded tree to an SVG image using Graphviz.
func (t *Tree) RenderSVG(ctx context.Context) ([]byte, error) {
	return t.render(ctx, graphviz.SVG)
}

func (t *Tree) render(ctx context.Context, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("recorder: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(t.ToDOT()))
	if err != nil {
		return nil, fmt.Errorf("recorder: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("recorder: render: %w", err)
	}

	return buf.Bytes(), nil
}
