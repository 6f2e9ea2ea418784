package layered

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/netcanvas/netcanvas/pkg/diagram"
	"github.com/netcanvas/netcanvas/pkg/layout"
)

// pointsPerInch converts between canvas pixels and Graphviz inches. Canvas
// pixels are treated as Graphviz points (72 per inch).
const pointsPerInch = 72.0

// buildDOT renders the node and edge set as a DOT digraph configured for a
// fixed-geometry dot pass: every node is a fixed-size box matching its
// canvas rectangle, and the spacing parameters arrive as nodesep/ranksep/
// esep. Labels are suppressed so the attributed output stays small and
// trivially parseable.
func buildDOT(nodes []diagram.Node, edges []diagram.Edge, spacing layout.Spacing, dir layout.Direction) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", dir)
	fmt.Fprintf(&buf, "  nodesep=%.4f;\n", float64(spacing.NodeSep)/pointsPerInch)
	fmt.Fprintf(&buf, "  ranksep=%.4f;\n", float64(spacing.RankSep)/pointsPerInch)
	fmt.Fprintf(&buf, "  esep=\"+%d\";\n", spacing.EdgeSep)
	buf.WriteString("  node [shape=box, fixedsize=true, label=\"\"];\n")
	buf.WriteString("\n")

	known := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		known[n.ID] = struct{}{}
		s := n.Size()
		fmt.Fprintf(&buf, "  %s [width=%.4f, height=%.4f];\n",
			quoteID(n.ID), s.Width/pointsPerInch, s.Height/pointsPerInch)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		if e.Source == e.Target {
			continue // self-loops are not layout-significant
		}
		if _, ok := known[e.Source]; !ok {
			continue
		}
		if _, ok := known[e.Target]; !ok {
			continue
		}
		fmt.Fprintf(&buf, "  %s -> %s;\n", quoteID(e.Source), quoteID(e.Target))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// quoteID emits a node ID as a quoted DOT string.
func quoteID(id string) string {
	escaped := strings.ReplaceAll(id, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

var bbRe = regexp.MustCompile(`bb="([0-9.+-]+),([0-9.+-]+),([0-9.+-]+),([0-9.+-]+)"`)

// parsePositions extracts node center positions from attributed DOT output
// and converts them to top-left canvas coordinates. Graphviz places the
// origin at the bottom-left with y growing upward, so y is flipped against
// the graph bounding box.
func parsePositions(attributed []byte, nodes []diagram.Node) (map[string]diagram.Point, error) {
	bb := bbRe.FindSubmatch(attributed)
	if bb == nil {
		return nil, fmt.Errorf("no bounding box in layout output")
	}
	maxY, err := strconv.ParseFloat(string(bb[4]), 64)
	if err != nil {
		return nil, fmt.Errorf("parse bounding box: %w", err)
	}

	out := make(map[string]diagram.Point, len(nodes))
	for _, n := range nodes {
		re, err := nodePosPattern(n.ID)
		if err != nil {
			return nil, err
		}
		m := re.FindSubmatch(attributed)
		if m == nil {
			return nil, fmt.Errorf("no position for node %q in layout output", n.ID)
		}
		cx, errX := strconv.ParseFloat(string(m[1]), 64)
		cy, errY := strconv.ParseFloat(string(m[2]), 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("parse position for node %q", n.ID)
		}

		s := n.Size()
		out[n.ID] = diagram.Point{
			X: cx - s.Width/2,
			Y: (maxY - cy) - s.Height/2,
		}
	}
	return out, nil
}

// nodePosPattern matches the pos attribute of one node statement. Node
// statements start on their own line and carry no label text (buildDOT
// suppresses labels), so the attribute list never contains a closing bracket
// before the statement ends. Graphviz drops the quotes around IDs that do
// not need them, hence the optional quoting. Edge statements never match:
// their ID is followed by an arrow, not an attribute list.
func nodePosPattern(id string) (*regexp.Regexp, error) {
	escaped := strings.ReplaceAll(id, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	pattern := `(?m)^\s*"?` + regexp.QuoteMeta(escaped) + `"?\s*\[(?s:[^\]]*?)pos="(-?[0-9.]+),(-?[0-9.]+)"`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("node id %q: %w", id, err)
	}
	return re, nil
}
