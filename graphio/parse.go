package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/maxclique/core"
)

// ErrMalformedHeader is returned when the leading "N M" line cannot be
// parsed as two non-negative integers.
var ErrMalformedHeader = errors.New("graphio: malformed header line")

// ErrMalformedEdge is returned when an edge line cannot be parsed as two
// integer vertex IDs.
var ErrMalformedEdge = errors.New("graphio: malformed edge line")

// Read parses the plain-text graph format: an ASCII header line "N M"
// giving vertex and edge counts, followed by M whitespace-separated "U
// V" edge lines. Word-splitting (bufio.ScanWords) makes the parse
// tolerant of any mix of spaces, tabs, and newlines between tokens.
//
// The caller is responsible for clean input: Read does not dedupe edges
// or reject self-loops.
func Read(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	n, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("graphio: reading vertex count: %w", ErrMalformedHeader)
	}
	m, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("graphio: reading edge count: %w", ErrMalformedHeader)
	}
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("graphio: negative count in header (n=%d, m=%d): %w", n, m, ErrMalformedHeader)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}

	for i := 0; i < m; i++ {
		u, err := nextInt(sc)
		if err != nil {
			return nil, fmt.Errorf("graphio: edge %d, reading U: %w", i, ErrMalformedEdge)
		}
		v, err := nextInt(sc)
		if err != nil {
			return nil, fmt.Errorf("graphio: edge %d, reading V: %w", i, ErrMalformedEdge)
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("graphio: edge %d (%d,%d): %w", i, u, v, err)
		}
	}

	return g, nil
}

func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}

		return 0, io.ErrUnexpectedEOF
	}

	return strconv.Atoi(sc.Text())
}
