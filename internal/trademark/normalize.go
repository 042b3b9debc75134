package trademark

import (
	"sort"
	"strconv"
	"strings"

	"github.com/brandcheck/brandcheck/internal/core"
	"github.com/brandcheck/brandcheck/internal/niceclass"
)

// Field-name fallbacks observed across registry API versions and
// environments, probed in priority order. Adding a new upstream shape is a
// one-line table change. Absent fields resolve to empty values rather than
// a record-level error.
var (
	wordFields = []string{
		"words", "tradeMarkWords", "markText", "text", "name", "tradeMarkName",
	}
	statusFields = []string{
		"statusGroup", "statusCode", "statusDetail", "status",
		"tradeMarkStatus", "state", "ipRightStatus",
	}
)

// normalizeMatch maps a heterogeneous detail record into the canonical
// match structure. Error records become placeholders with the Err flag set
// so classification can skip them without aborting.
func normalizeMatch(d detailResult) core.TrademarkMatch {
	if d.Err != nil {
		return core.TrademarkMatch{ID: d.ID, Err: true}
	}

	classes := extractClasses(d.Data)
	labels := make([]string, len(classes))
	for i, class := range classes {
		labels[i] = niceclass.Label(class)
	}

	return core.TrademarkMatch{
		ID:          d.ID,
		Words:       firstField(d.Data, wordFields),
		Status:      firstField(d.Data, statusFields),
		Classes:     classes,
		ClassLabels: labels,
	}
}

func firstField(record map[string]any, fields []string) string {
	for _, field := range fields {
		if value := stringValue(record[field]); value != "" {
			return value
		}
	}
	return ""
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}

// extractClasses collects classification codes from the goodsAndServices
// array, deduplicates them, and sorts ascending by numeric value so "9"
// precedes "35". Non-numeric codes sink to the end in lexical order.
func extractClasses(record map[string]any) []string {
	entries, ok := record["goodsAndServices"].([]any)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{}, len(entries))
	var classes []string
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		code := stringValue(obj["class"])
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		classes = append(classes, code)
	}

	sort.SliceStable(classes, func(i, j int) bool {
		ri, rj := classRank(classes[i]), classRank(classes[j])
		if ri != rj {
			return ri < rj
		}
		return classes[i] < classes[j]
	})

	return classes
}

func classRank(code string) int {
	if n, err := strconv.Atoi(code); err == nil {
		return n
	}
	return int(^uint(0) >> 1)
}
