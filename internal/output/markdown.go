package output

import (
	"fmt"
	"strings"

	"github.com/brandcheck/brandcheck/internal/core"
)

// MarkdownFormatter renders results as a Markdown table.
type MarkdownFormatter struct{}

// Format renders an aggregated result as Markdown.
func (f *MarkdownFormatter) Format(result *core.AggregatedResult) (string, error) {
	if result == nil {
		return "", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Brand check: %s\n\n", result.Name)
	b.WriteString("| Check | Status | Notes |\n")
	b.WriteString("|---|---|---|\n")

	for _, r := range flatten(result) {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", escapeCell(r.Label), r.Status, escapeCell(notes(r)))
	}

	if len(result.Trademark.ExactMatches) > 0 {
		b.WriteString("\n### Exact trademark matches\n\n")
		for _, m := range result.Trademark.ExactMatches {
			fmt.Fprintf(&b, "- %s\n", describeMatch(m))
		}
	}
	if len(result.Trademark.SimilarMatches) > 0 {
		b.WriteString("\n### Similar trademark matches\n\n")
		for _, m := range result.Trademark.SimilarMatches {
			fmt.Fprintf(&b, "- %s\n", describeMatch(m))
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}
