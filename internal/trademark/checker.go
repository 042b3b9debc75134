// Package trademark checks candidate brand names against the IP Australia
// trademark registry: OAuth client-credentials auth, quick search, detail
// fetch, normalization, and availability classification.
package trademark

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/brandcheck/brandcheck/internal/core"
)

// Label identifies trademark check results in aggregated output.
const Label = "Trademark (IP Australia)"

const (
	availableSummary = "No registered word trademarks were found in Australia."
	availableWhy     = "This lowers risk, but it's not a guarantee. Similar marks, pending applications, or other rights may still exist."
	takenSummary     = "An identical registered trademark exists in Australia."
	takenWhy         = "Using the same name can create a high risk of trademark conflict, especially in related industries."
	similarSummary   = "Similar registered trademarks exist in Australia."
	similarWhy       = "Even if names aren't identical, similar marks in related categories can still cause legal and branding risk."
	fallbackSummary  = "Registered trademarks exist with this name or something similar."
	unknownSummary   = "We couldn't run the trademark check right now."
	unknownWhy       = "Trademark results help you avoid choosing a name that could conflict with an existing brand."
)

// Config carries the registry endpoints and client credentials.
type Config struct {
	TokenURL     string
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// Checker performs trademark availability checks. Construct with New.
type Checker struct {
	client  *http.Client
	logger  *zap.Logger
	tokens  *tokenSource
	baseURL string
}

// New validates the configuration and builds a checker. A missing
// credential or endpoint yields a *ConfigError.
func New(cfg Config, client *http.Client, logger *zap.Logger) (*Checker, error) {
	switch {
	case strings.TrimSpace(cfg.TokenURL) == "":
		return nil, &ConfigError{Field: "token URL"}
	case strings.TrimSpace(cfg.BaseURL) == "":
		return nil, &ConfigError{Field: "base URL"}
	case strings.TrimSpace(cfg.ClientID) == "":
		return nil, &ConfigError{Field: "client id"}
	case strings.TrimSpace(cfg.ClientSecret) == "":
		return nil, &ConfigError{Field: "client secret"}
	}

	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Checker{
		client:  client,
		logger:  logger,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		tokens: &tokenSource{
			client:       client,
			url:          cfg.TokenURL,
			clientID:     cfg.ClientID,
			clientSecret: cfg.ClientSecret,
			clock:        func() time.Time { return time.Now().UTC() },
		},
	}, nil
}

// Check runs the full pipeline for one name. Every failure mode is encoded
// in the returned result's status and details; Check never returns an
// error past its boundary.
func (c *Checker) Check(ctx context.Context, name string) core.CheckResult {
	query := core.NormalizeQuery(name)

	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.Warn("trademark token acquisition failed", zap.Error(err))
		return unavailableResult("Request failed: " + err.Error())
	}

	search, err := c.quickSearch(ctx, query, token)
	if err != nil {
		c.logger.Warn("trademark quick search failed", zap.String("query", query), zap.Error(err))
		var searchErr *SearchError
		if errors.As(err, &searchErr) {
			return unavailableResult(fmt.Sprintf("IP Australia error %d: %s", searchErr.StatusCode, searchErr.Body))
		}
		return unavailableResult("Request failed: " + err.Error())
	}

	if len(search.IDs) == 0 {
		return core.CheckResult{
			Label:          Label,
			Status:         core.StatusAvailable,
			Summary:        availableSummary,
			WhyThisMatters: availableWhy,
			Details:        "0 registered results returned by IP Australia quick search.",
		}
	}

	details := c.fetchDetails(ctx, search.IDs, token)
	matches := make([]core.TrademarkMatch, len(details))
	for i, d := range details {
		if d.Err != nil {
			c.logger.Debug("trademark detail fetch degraded", zap.String("id", d.ID), zap.Error(d.Err))
		}
		matches[i] = normalizeMatch(d)
	}

	return classify(query, search.Count, matches)
}

// classify partitions normalized matches into exact and similar and
// decides the overall status. Matches with empty words (error placeholders
// or unparseable records) are excluded from both partitions; when nothing
// parsed at all, bare-id placeholders keep the result usable.
func classify(query string, count int, matches []core.TrademarkMatch) core.CheckResult {
	var exact, similar []core.TrademarkMatch
	for _, m := range matches {
		switch {
		case m.Err || m.Words == "":
		case strings.EqualFold(m.Words, query):
			exact = append(exact, m)
		default:
			similar = append(similar, m)
		}
	}

	if len(exact) == 0 && len(similar) == 0 {
		ids := make([]string, len(matches))
		placeholders := make([]core.TrademarkMatch, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
			placeholders[i] = core.TrademarkMatch{ID: m.ID}
		}
		return core.CheckResult{
			Label:          Label,
			Status:         core.StatusSimilar,
			Summary:        fallbackSummary,
			WhyThisMatters: similarWhy,
			Details:        fmt.Sprintf("Found %d registered match(es). IDs: %s", count, strings.Join(ids, ", ")),
			SimilarMatches: placeholders,
		}
	}

	result := core.CheckResult{
		Label:          Label,
		Status:         core.StatusSimilar,
		Summary:        similarSummary,
		WhyThisMatters: similarWhy,
		Details:        fmt.Sprintf("Found %d registered match(es). Showing the top %d.", count, len(matches)),
		ExactMatches:   exact,
		SimilarMatches: similar,
	}
	if len(exact) > 0 {
		result.Status = core.StatusTaken
		result.Summary = takenSummary
		result.WhyThisMatters = takenWhy
	}

	return result
}

func unavailableResult(details string) core.CheckResult {
	return core.CheckResult{
		Label:          Label,
		Status:         core.StatusUnknown,
		Summary:        unknownSummary,
		WhyThisMatters: unknownWhy,
		Details:        details,
	}
}

// Unavailable stands in for a Checker whose configuration is incomplete.
// Every check reports unknown with the configuration reason in details.
type Unavailable struct {
	Reason string
}

// Check reports the degraded unknown result.
func (u Unavailable) Check(ctx context.Context, name string) core.CheckResult {
	return unavailableResult(u.Reason)
}
