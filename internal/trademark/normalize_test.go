package trademark

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func record(t *testing.T, raw string) map[string]any {
	t.Helper()
	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return data
}

func TestNormalizeMatchWordFieldFallbackOrder(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"primary field wins", `{"words":"Acme","name":"ignored"}`, "Acme"},
		{"tradeMarkWords fallback", `{"tradeMarkWords":"Acme Labs"}`, "Acme Labs"},
		{"markText fallback", `{"markText":"Acme"}`, "Acme"},
		{"tradeMarkName last", `{"tradeMarkName":"Acme"}`, "Acme"},
		{"empty string skipped", `{"words":"","text":"Acme"}`, "Acme"},
		{"numeric value coerced", `{"words":2101234}`, "2101234"},
		{"nothing recognized", `{"label":"Acme"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := normalizeMatch(detailResult{ID: "1", Data: record(t, tt.raw)})
			require.Equal(t, tt.want, match.Words)
		})
	}
}

func TestNormalizeMatchStatusFieldFallbackOrder(t *testing.T) {
	match := normalizeMatch(detailResult{ID: "1", Data: record(t,
		`{"status":"Registered","statusGroup":"REGISTERED"}`)})
	require.Equal(t, "REGISTERED", match.Status)

	match = normalizeMatch(detailResult{ID: "1", Data: record(t,
		`{"ipRightStatus":"Registered/Protected"}`)})
	require.Equal(t, "Registered/Protected", match.Status)
}

func TestNormalizeMatchErrorBecomesPlaceholder(t *testing.T) {
	match := normalizeMatch(detailResult{ID: "42", Err: errors.New("detail fetch failed 500: boom")})
	require.Equal(t, "42", match.ID)
	require.True(t, match.Err)
	require.Empty(t, match.Words)
	require.Empty(t, match.Classes)
}

func TestExtractClassesSortsNumerically(t *testing.T) {
	data := record(t, `{"goodsAndServices":[
		{"class":"35"},
		{"class":"9"},
		{"class":"100"}
	]}`)
	require.Equal(t, []string{"9", "35", "100"}, extractClasses(data))
}

func TestExtractClassesDeduplicates(t *testing.T) {
	data := record(t, `{"goodsAndServices":[
		{"class":"9","description":"software"},
		{"class":"9","description":"hardware"},
		{"class":42}
	]}`)
	require.Equal(t, []string{"9", "42"}, extractClasses(data))
}

func TestExtractClassesNonNumericSinkToEnd(t *testing.T) {
	data := record(t, `{"goodsAndServices":[
		{"class":"B"},
		{"class":"35"},
		{"class":"A"}
	]}`)
	require.Equal(t, []string{"35", "A", "B"}, extractClasses(data))
}

func TestExtractClassesMalformedEntries(t *testing.T) {
	data := record(t, `{"goodsAndServices":[
		"not-an-object",
		{"description":"no class"},
		{"class":""}
	]}`)
	require.Empty(t, extractClasses(data))

	require.Empty(t, extractClasses(record(t, `{"goodsAndServices":"oops"}`)))
	require.Empty(t, extractClasses(record(t, `{}`)))
}

func TestNormalizeMatchAttachesClassLabels(t *testing.T) {
	match := normalizeMatch(detailResult{ID: "1", Data: record(t,
		`{"words":"Acme","goodsAndServices":[{"class":"9"},{"class":"35"}]}`)})
	require.Equal(t, []string{"9", "35"}, match.Classes)
	require.Len(t, match.ClassLabels, 2)
	require.Contains(t, match.ClassLabels[0], "9 (")
	require.Contains(t, match.ClassLabels[1], "35 (")
}
