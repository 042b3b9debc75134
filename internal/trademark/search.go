package trademark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// maxCandidates caps how many quick-search hits proceed to detail fetch.
const maxCandidates = 5

type quickSearchRequest struct {
	Query   string             `json:"query"`
	Sort    quickSearchSort    `json:"sort"`
	Filters quickSearchFilters `json:"filters"`
}

type quickSearchSort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type quickSearchFilters struct {
	QuickSearchType []string `json:"quickSearchType"`
	Status          []string `json:"status,omitempty"`
}

type quickSearchResult struct {
	Count int
	IDs   []string
}

// quickSearch submits a word-based query and extracts candidate record
// identifiers, capped to maxCandidates.
func (c *Checker) quickSearch(ctx context.Context, query, token string) (quickSearchResult, error) {
	payload := quickSearchRequest{
		Query: query,
		Sort:  quickSearchSort{Field: "NUMBER", Direction: "ASCENDING"},
		Filters: quickSearchFilters{
			QuickSearchType: []string{"WORD"},
			Status:          []string{"REGISTERED"},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return quickSearchResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search/quick", bytes.NewReader(body))
	if err != nil {
		return quickSearchResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return quickSearchResult{}, err
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return quickSearchResult{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return quickSearchResult{}, &SearchError{StatusCode: resp.StatusCode, Body: truncate(raw, 250)}
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return quickSearchResult{}, fmt.Errorf("decode quick search response: %w", err)
	}

	result := quickSearchResult{Count: intValue(decoded["count"])}

	ids := extractCandidateIDs(decoded)
	if result.Count == 0 || len(ids) == 0 {
		return result, nil
	}
	if len(ids) > maxCandidates {
		ids = ids[:maxCandidates]
	}
	result.IDs = ids

	return result, nil
}

// The id array key and element shape have varied across registry API
// versions and environments. Extraction probes known alternatives in
// priority order and degrades to an empty list instead of failing hard.
var (
	candidateIDKeys   = []string{"trademarkIds", "ids", "results"}
	candidateIDFields = []string{"number", "id", "trademarkId", "applicationNumber"}
)

func extractCandidateIDs(payload map[string]any) []string {
	for _, key := range candidateIDKeys {
		list, ok := payload[key].([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(list))
		for _, item := range list {
			if id := coerceID(item); id != "" {
				out = append(out, id)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func coerceID(item any) string {
	switch v := item.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]any:
		for _, field := range candidateIDFields {
			if id := coerceID(v[field]); id != "" {
				return id
			}
		}
	}
	return ""
}

func intValue(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return parsed
		}
	}
	return 0
}
