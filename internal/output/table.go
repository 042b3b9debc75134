package output

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/brandcheck/brandcheck/internal/core"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// Format renders an aggregated result as a table, with trademark matches
// listed underneath when present.
func (f *TableFormatter) Format(result *core.AggregatedResult) (string, error) {
	if result == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Brand check: " + result.Name)
	t.AppendHeader(table.Row{"Check", "Status", "Notes"})

	for _, r := range flatten(result) {
		t.AppendRow(table.Row{r.Label, string(r.Status), notes(r)})
	}

	rendered := t.Render()
	rendered += renderMatchSections(result.Trademark)

	return rendered, nil
}

func renderMatchSections(tm core.CheckResult) string {
	var b strings.Builder

	if len(tm.ExactMatches) > 0 {
		b.WriteString("\n\nExact trademark matches:\n")
		for _, m := range tm.ExactMatches {
			b.WriteString("  - " + describeMatch(m) + "\n")
		}
	}
	if len(tm.SimilarMatches) > 0 {
		b.WriteString("\n\nSimilar trademark matches:\n")
		for _, m := range tm.SimilarMatches {
			b.WriteString("  - " + describeMatch(m) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
