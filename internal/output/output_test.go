package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brandcheck/brandcheck/internal/core"
)

func sampleResult() *core.AggregatedResult {
	return &core.AggregatedResult{
		Name: "Acme",
		BusinessName: core.CheckResult{
			Label:   "ASIC business name (AU)",
			Status:  core.StatusAvailable,
			Details: "No exact match found (demo).",
		},
		Trademark: core.CheckResult{
			Label:   "Trademark (IP Australia)",
			Status:  core.StatusTaken,
			Summary: "An identical registered trademark exists in Australia.",
			ExactMatches: []core.TrademarkMatch{
				{ID: "123", Words: "Acme", Status: "Registered", Classes: []string{"9"}, ClassLabels: []string{"9 (Scientific & electronic apparatus, software)"}},
			},
			SimilarMatches: []core.TrademarkMatch{
				{ID: "456", Words: "Acme Labs"},
			},
		},
		Domains: []core.CheckResult{
			{Label: "acme.com", Status: core.StatusAvailable, Details: "Appears free (demo)."},
			{Label: "acme.com.au", Status: core.StatusAvailable, Details: "Appears free (demo)."},
		},
		Socials: []core.CheckResult{
			{Label: "@acme (Instagram)", Status: core.StatusAvailable, Details: "Appears free (demo)."},
			{Label: "@acme (TikTok)", Status: core.StatusAvailable, Details: "Appears free (demo)."},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"":         FormatTable,
		"table":    FormatTable,
		"JSON":     FormatJSON,
		" yaml ":   FormatYAML,
		"markdown": FormatMarkdown,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported output format")
}

func TestTableFormatter(t *testing.T) {
	rendered, err := (&TableFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	require.Contains(t, rendered, "Brand check: Acme")
	require.Contains(t, rendered, "Trademark (IP Australia)")
	require.Contains(t, rendered, "taken")
	require.Contains(t, rendered, "Exact trademark matches:")
	require.Contains(t, rendered, `123 "Acme" Registered classes 9 (Scientific & electronic apparatus, software)`)
	require.Contains(t, rendered, "Similar trademark matches:")
	require.Contains(t, rendered, `456 "Acme Labs"`)
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	rendered, err := (&JSONFormatter{Indent: true}).Format(sampleResult())
	require.NoError(t, err)

	var decoded core.AggregatedResult
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))
	require.Equal(t, "Acme", decoded.Name)
	require.Equal(t, core.StatusTaken, decoded.Trademark.Status)
	require.Len(t, decoded.Trademark.ExactMatches, 1)
	require.Len(t, decoded.Domains, 2)
}

func TestMarkdownFormatter(t *testing.T) {
	rendered, err := (&MarkdownFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(rendered, "## Brand check: Acme"))
	require.Contains(t, rendered, "| Check | Status | Notes |")
	require.Contains(t, rendered, "| Trademark (IP Australia) | taken |")
	require.Contains(t, rendered, "### Exact trademark matches")
	require.Contains(t, rendered, "- 123 \"Acme\" Registered")
}

func TestMarkdownFormatterEscapesPipes(t *testing.T) {
	result := sampleResult()
	result.BusinessName.Details = "contains | pipe"
	result.BusinessName.Summary = ""

	rendered, err := (&MarkdownFormatter{}).Format(result)
	require.NoError(t, err)
	require.Contains(t, rendered, `contains \| pipe`)
}

func TestYAMLFormatter(t *testing.T) {
	rendered, err := (&YAMLFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	require.Contains(t, rendered, "name: Acme")
	require.Contains(t, rendered, "status: taken")
}

func TestFormattersHandleNilResult(t *testing.T) {
	for _, f := range []Formatter{&TableFormatter{}, &JSONFormatter{}, &MarkdownFormatter{}, &YAMLFormatter{}} {
		rendered, err := f.Format(nil)
		require.NoError(t, err)
		require.Empty(t, rendered)
	}
}

func TestNotesPrefersSummary(t *testing.T) {
	r := core.CheckResult{Summary: "summary text", Details: "details text"}
	require.Equal(t, "summary text", notes(r))

	r.Summary = ""
	require.Equal(t, "details text", notes(r))
}
