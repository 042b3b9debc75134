package core

import "strings"

// AvailabilityStatus classifies the outcome of a single availability check.
type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "available"
	StatusTaken     AvailabilityStatus = "taken"
	StatusSimilar   AvailabilityStatus = "similar"
	StatusUnknown   AvailabilityStatus = "unknown"
)

// TrademarkMatch is the canonical shape for one candidate trademark record
// after schema variance across registry API versions has been absorbed.
// Classes and ClassLabels are always the same length and index-aligned.
type TrademarkMatch struct {
	ID          string   `json:"id"`
	Words       string   `json:"words,omitempty"`
	Status      string   `json:"status,omitempty"`
	Classes     []string `json:"classes,omitempty"`
	ClassLabels []string `json:"classLabels,omitempty"`

	// Err marks a record whose detail fetch failed. Error-flagged matches
	// are excluded from classification.
	Err bool `json:"-"`
}

// CheckResult reports one availability check with supporting context.
type CheckResult struct {
	Label          string             `json:"label"`
	Status         AvailabilityStatus `json:"status"`
	Summary        string             `json:"summary,omitempty"`
	WhyThisMatters string             `json:"whyThisMatters,omitempty"`
	Details        string             `json:"details,omitempty"`
	ExactMatches   []TrademarkMatch   `json:"exactMatches,omitempty"`
	SimilarMatches []TrademarkMatch   `json:"similarMatches,omitempty"`
}

// AggregatedResult combines all checks run for a single candidate name.
type AggregatedResult struct {
	Name         string        `json:"name"`
	BusinessName CheckResult   `json:"businessName"`
	Trademark    CheckResult   `json:"trademark"`
	Domains      []CheckResult `json:"domains"`
	Socials      []CheckResult `json:"socials"`
}

// NormalizeQuery trims the input and collapses internal whitespace runs to
// single spaces. The result is used both as the search payload and as the
// case-insensitive exact-match key.
func NormalizeQuery(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
