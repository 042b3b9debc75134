// Package output renders aggregated check results for the CLI.
package output

import (
	"fmt"
	"strings"

	"github.com/brandcheck/brandcheck/internal/core"
)

// Format represents an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// Formatter renders an aggregated result.
type Formatter interface {
	Format(result *core.AggregatedResult) (string, error)
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMarkdown):
		return FormatMarkdown, nil
	case string(FormatYAML):
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// flatten lists every check in display order.
func flatten(result *core.AggregatedResult) []core.CheckResult {
	if result == nil {
		return nil
	}

	out := make([]core.CheckResult, 0, 2+len(result.Domains)+len(result.Socials))
	out = append(out, result.BusinessName, result.Trademark)
	out = append(out, result.Domains...)
	out = append(out, result.Socials...)
	return out
}

func notes(r core.CheckResult) string {
	if r.Summary != "" {
		return r.Summary
	}
	return r.Details
}

func describeMatch(m core.TrademarkMatch) string {
	parts := []string{m.ID}
	if m.Words != "" {
		parts = append(parts, fmt.Sprintf("%q", m.Words))
	}
	if m.Status != "" {
		parts = append(parts, m.Status)
	}
	if len(m.ClassLabels) > 0 {
		parts = append(parts, "classes "+strings.Join(m.ClassLabels, "; "))
	}
	return strings.Join(parts, " ")
}
