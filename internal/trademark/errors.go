package trademark

import "fmt"

// ConfigError reports a missing credential or endpoint. It is not
// retryable; callers convert it into a degraded result or a 5xx response.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("trademark config missing %s", e.Field)
}

// AuthError reports a rejected or malformed client-credentials exchange.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("token request failed %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("token response missing access_token: %s", e.Body)
}

// SearchError reports a non-success quick-search response. Body is
// truncated upstream response text for diagnostics.
type SearchError struct {
	StatusCode int
	Body       string
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("quick search failed %d: %s", e.StatusCode, e.Body)
}

func truncate(body []byte, limit int) string {
	if len(body) > limit {
		body = body[:limit]
	}
	return string(body)
}
