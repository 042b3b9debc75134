package checker

import (
	"context"

	"github.com/brandcheck/brandcheck/internal/core"
)

// BusinessNameChecker reports demo ASIC business-name availability.
type BusinessNameChecker struct{}

// Check evaluates the demo heuristic for the given name.
func (c *BusinessNameChecker) Check(ctx context.Context, name string) core.CheckResult {
	profile := profileFor(name)

	result := core.CheckResult{
		Label:   "ASIC business name (AU)",
		Status:  core.StatusAvailable,
		Details: "No exact match found (demo).",
	}
	if profile.probablyTaken {
		result.Status = core.StatusTaken
		result.Details = "A similar or identical business name appears to exist (demo)."
	}

	return result
}
