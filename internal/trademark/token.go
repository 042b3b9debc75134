package trademark

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	// tokenSafetyBuffer is subtracted from the registry-declared lifetime
	// so a token is never served when it could expire mid-request.
	tokenSafetyBuffer = 60 * time.Second

	defaultTokenLifetime = 3600 * time.Second
)

// tokenSource caches a single bearer token obtained through the OAuth
// client-credentials grant and refreshes it on demand. The mutex also
// serializes refresh, so concurrent callers share one exchange.
type tokenSource struct {
	client       *http.Client
	url          string
	clientID     string
	clientSecret string
	clock        func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// Token returns the cached bearer token, refreshing it when expired.
func (t *tokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && t.clock().Before(t.expiresAt) {
		return t.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", t.clientID)
	form.Set("client_secret", t.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &AuthError{StatusCode: resp.StatusCode, Body: truncate(body, 250)}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.AccessToken == "" {
		return "", &AuthError{Body: truncate(body, 250)}
	}

	lifetime := defaultTokenLifetime
	if payload.ExpiresIn > 0 {
		lifetime = time.Duration(payload.ExpiresIn) * time.Second
	}

	t.token = payload.AccessToken
	t.expiresAt = t.clock().Add(lifetime - tokenSafetyBuffer)

	return t.token, nil
}
