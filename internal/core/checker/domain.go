package checker

import (
	"context"

	"github.com/brandcheck/brandcheck/internal/core"
)

// DomainChecker reports demo availability for the .com and .com.au domains
// derived from the candidate name.
type DomainChecker struct{}

// Check evaluates the demo heuristics for both domains.
func (c *DomainChecker) Check(ctx context.Context, name string) []core.CheckResult {
	profile := profileFor(name)

	com := core.CheckResult{
		Label:   profile.compact + ".com",
		Status:  core.StatusAvailable,
		Details: "Appears free (demo).",
	}
	if profile.probablyTaken {
		com.Status = core.StatusTaken
		com.Details = "Likely registered already (demo)."
	}

	comAU := core.CheckResult{
		Label:   profile.compact + ".com.au",
		Status:  core.StatusAvailable,
		Details: "Appears free (demo).",
	}
	if profile.similarNearby {
		comAU.Status = core.StatusSimilar
		comAU.Details = "Similar domains may exist (demo)."
	}

	return []core.CheckResult{com, comAU}
}
