package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/togglewalk/pkg/domain"
)

// GraphOverlay contains walk data to visualize on the graph.
// Node numbers are 0-based; labels are printed 1-based like the input format.
type GraphOverlay struct {
	VisitedNodes []int
	CurrentNode  int
	// Borders groups nodes into one subgraph per range.
	Borders []int
}

// GenerateMermaid produces a Mermaid flowchart of a toggle graph.
// Shapes:
// - Start: ([Stadium])
// - Terminal: ((Circle))
// - Default: [Rectangle]
// Edges are labelled L and R; a node whose edges agree gets one "L/R" arrow.
func GenerateMermaid(g *domain.Graph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	n := g.Len()
	if overlay != nil && len(overlay.Borders) > 0 {
		lo := 0
		for i, hi := range append(normalizeBorders(overlay.Borders, n), n) {
			if hi <= lo {
				continue
			}
			fmt.Fprintf(&sb, "    subgraph range%d[\"nodes %d-%d\"]\n", i, lo+1, hi)
			for v := lo; v < hi; v++ {
				sb.WriteString(indent + declare(g, v))
			}
			sb.WriteString("    end\n")
			lo = hi
		}
	} else {
		for v := 0; v < n; v++ {
			sb.WriteString(indent + declare(g, v))
		}
	}
	sb.WriteString(indent + declare(g, g.Terminal()))

	for v := 0; v < n; v++ {
		l, r := g.Left[v], g.Right[v]
		if l == r {
			fmt.Fprintf(&sb, "    %s -- \"L/R\" --> %s\n", nodeID(v), nodeID(l))
			continue
		}
		fmt.Fprintf(&sb, "    %s -- \"L\" --> %s\n", nodeID(v), nodeID(l))
		fmt.Fprintf(&sb, "    %s -. \"R\" .-> %s\n", nodeID(v), nodeID(r))
	}

	if overlay != nil && (len(overlay.VisitedNodes) > 0 || overlay.CurrentNode >= 0) {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[int]bool)
		for _, v := range overlay.VisitedNodes {
			if seen[v] || v < 0 || v > n {
				continue
			}
			seen[v] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(v))
		}
		if overlay.CurrentNode >= 0 && overlay.CurrentNode <= n {
			fmt.Fprintf(&sb, "    class %s current;\n", nodeID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

const indent = "    "

// declare renders one node line without indentation.
func declare(g *domain.Graph, v int) string {
	opener, closer := "[", "]"
	switch v {
	case g.Terminal():
		opener, closer = "((", "))"
	case g.Start:
		opener, closer = "([", "])"
	}
	return fmt.Sprintf("%s%s\"%d\"%s\n", nodeID(v), opener, v+1, closer)
}

func nodeID(v int) string {
	return fmt.Sprintf("n%d", v+1)
}

func normalizeBorders(borders []int, n int) []int {
	out := make([]int, 0, len(borders))
	for _, b := range borders {
		if b > 0 && b < n {
			out = append(out, b)
		}
	}
	return out
}
