// Package checker provides the demo business-name, domain, and social
// checkers. These are hardcoded heuristics standing in for real registry
// integrations; only the trademark check performs network lookups.
package checker

import "strings"

// demoProfile derives the heuristic signals used by all demo checkers.
type demoProfile struct {
	compact       string
	probablyTaken bool
	similarNearby bool
}

func profileFor(name string) demoProfile {
	normalized := strings.ToLower(strings.TrimSpace(name))
	return demoProfile{
		compact:       strings.ReplaceAll(normalized, " ", ""),
		probablyTaken: strings.Contains(normalized, "koala") || strings.Contains(normalized, "australia"),
		similarNearby: strings.Contains(normalized, "brew") || strings.Contains(normalized, "coffee"),
	}
}
