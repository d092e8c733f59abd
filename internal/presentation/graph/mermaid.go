package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/densca/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a sweep trace. Each snapshot becomes
// a node labelled with its value row (X for a captured symbol), joined in sweep order.
// It applies semantic styling:
// - Initial ring: ((Circle))
// - Converged ring: [[Subroutine]]
// - Ring carrying a captured symbol: [/Parallelogram/]
// - Default: [Rectangle]
// When verdict is given the last node is styled as correct, incorrect or tie.
func GenerateMermaid(snapshots []*domain.Configuration, verdict *domain.Verdict) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for i, c := range snapshots {
		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case c.HasConverged():
			opener, closer = "[[", "]]"
		case hasCaptured(c):
			opener, closer = "[/", "/]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", nodeID(i), opener, valueRow(c), closer)

		if i > 0 {
			fmt.Fprintf(&sb, "    %s -- \"%d\" --> %s\n", nodeID(i-1), i, nodeID(i))
		}
	}

	if verdict != nil && len(snapshots) > 0 {
		sb.WriteString("\n    %% Verdict\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef correct fill:#dcfce7,stroke:#15803d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef incorrect fill:#fee2e2,stroke:#b91c1c,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef tie fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")

		class := "incorrect"
		switch {
		case verdict.Tie:
			class = "tie"
		case verdict.Correct:
			class = "correct"
		}
		fmt.Fprintf(&sb, "    class %s %s;\n", nodeID(len(snapshots)-1), class)
	}

	return sb.String()
}

func nodeID(sweep int) string {
	return fmt.Sprintf("s%d", sweep)
}

func valueRow(c *domain.Configuration) string {
	var sb strings.Builder
	for i := 0; i < c.Size(); i++ {
		cell := c.Cell(i)
		switch {
		case cell.Intermediate && cell.Captured:
			sb.WriteByte('X')
		case cell.Value:
			sb.WriteByte('1')
		default:
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func hasCaptured(c *domain.Configuration) bool {
	for i := 0; i < c.Size(); i++ {
		if cell := c.Cell(i); cell.Intermediate && cell.Captured {
			return true
		}
	}
	return false
}
