package trademark

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
)

// detailResult is one record from the detail endpoint: either parsed data
// or a per-id error. A failed fetch never fails the batch.
type detailResult struct {
	ID   string
	Data map[string]any
	Err  error
}

// fetchDetails retrieves full records for all candidate ids concurrently.
// The returned slice mirrors the input ordering, not completion order.
func (c *Checker) fetchDetails(ctx context.Context, ids []string, token string) []detailResult {
	results := make([]detailResult, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i] = c.fetchDetail(ctx, id, token)
		}(i, id)
	}
	wg.Wait()

	return results
}

func (c *Checker) fetchDetail(ctx context.Context, id, token string) detailResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/trade-mark/"+url.PathEscape(id), nil)
	if err != nil {
		return detailResult{ID: id, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return detailResult{ID: id, Err: err}
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return detailResult{ID: id, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return detailResult{ID: id, Err: fmt.Errorf("detail fetch failed %d: %s", resp.StatusCode, truncate(body, 120))}
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return detailResult{ID: id, Err: fmt.Errorf("detail fetch returned non-JSON: %s", truncate(body, 120))}
	}

	return detailResult{ID: id, Data: data}
}
