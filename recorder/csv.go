package recorder

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrTreeEmpty is returned by ExportCSV when no recursive invocation was
// ever recorded (Run was never called with this Tree as its hook).
var ErrTreeEmpty = errors.New("recorder: tree has no recorded nodes")

// csvHeader is the fixed column order every exported row follows.
const csvHeader = "node_id,parent_id,children_ids,cliques_in_subtree,creation_order,depth,candidate_vertex,current_clique,x_size,p_size,pruned_by_pivot"

// ExportCSV writes the recorded tree in its fixed schema: one row per
// recorded node (real and shadow), plus a synthetic root row
// (node_id=-1, parent_id=-2) aggregating the real outer roots.
//
// encoding/csv is deliberately not used here: children_ids and
// current_clique must always be quoted, even when empty or free of any
// character encoding/csv's writer would consider quote-worthy, and
// encoding/csv exposes no such "always quote this column" policy.
func (t *Tree) ExportCSV(w io.Writer) error {
	if len(t.nodes) == 0 {
		return ErrTreeEmpty
	}

	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(csvHeader); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	roots := t.Roots()
	rootIDs := make([]int64, len(roots))
	for i, r := range roots {
		rootIDs[i] = r.NodeID
	}

	if err := writeRow(bw, syntheticRootID, syntheticParentID, rootIDs, t.TotalCliques(), -1, -1, -1, nil, 0, 0, false); err != nil {
		return err
	}

	for _, n := range t.nodes {
		if err := writeRow(bw, n.NodeID, n.ParentID, n.Children, n.CliquesInSubtree, n.CreationOrder,
			n.Depth, n.CandidateVertex, n.CurrentClique, n.XSize, n.PSize, n.PrunedByPivot); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeRow(bw *bufio.Writer, nodeID, parentID int64, children []int64, cliques int, creationOrder int64,
	depth, candidate int, clique []int, xSize, pSize int, pruned bool) error {
	fields := []string{
		strconv.FormatInt(nodeID, 10),
		strconv.FormatInt(parentID, 10),
		quoteField(joinInt64(children)),
		strconv.Itoa(cliques),
		strconv.FormatInt(creationOrder, 10),
		strconv.Itoa(depth),
		strconv.Itoa(candidate),
		quoteField(joinInt(clique)),
		strconv.Itoa(xSize),
		strconv.Itoa(pSize),
		strconv.FormatBool(pruned),
	}

	if _, err := bw.WriteString(strings.Join(fields, ",")); err != nil {
		return err
	}

	return bw.WriteByte('\n')
}

func quoteField(s string) string {
	return `"` + s + `"`
}

func joinInt(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ";")
}

func joinInt64(vs []int64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return strings.Join(parts, ";")
}
