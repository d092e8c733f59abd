package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/densca/pkg/verify"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// The style follows the terminal background.
func NewRenderer(width int) func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Summary formats search reports as a markdown table.
func Summary(reports []verify.Report) string {
	var b strings.Builder
	b.WriteString("# Verification summary\n\n")
	b.WriteString("| Size | Candidates | Evaluated | Verdict | Duration |\n")
	b.WriteString("|---:|---:|---:|---|---:|\n")

	clean := 0
	for _, r := range reports {
		verdict := "clean"
		if r.Found {
			verdict = fmt.Sprintf("counterexample `%0*b`", r.Size, r.CounterExample)
		} else {
			clean++
		}
		fmt.Fprintf(&b, "| %d | %d | %d | %s | %s |\n",
			r.Size, r.Total, r.Evaluated, verdict, r.Duration.Round(time.Millisecond))
	}

	fmt.Fprintf(&b, "\n%d of %d sizes clean.\n", clean, len(reports))
	return b.String()
}
