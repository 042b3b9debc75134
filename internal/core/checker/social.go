package checker

import (
	"context"

	"github.com/brandcheck/brandcheck/internal/core"
)

// SocialChecker reports demo availability for social-media handles derived
// from the candidate name.
type SocialChecker struct{}

// Check evaluates the demo heuristics for Instagram and TikTok handles.
func (c *SocialChecker) Check(ctx context.Context, name string) []core.CheckResult {
	profile := profileFor(name)

	instagram := core.CheckResult{
		Label:   "@" + profile.compact + " (Instagram)",
		Status:  core.StatusAvailable,
		Details: "Appears free (demo).",
	}
	if profile.probablyTaken {
		instagram.Status = core.StatusTaken
		instagram.Details = "Handle looks popular (demo)."
	}

	tiktok := core.CheckResult{
		Label:   "@" + profile.compact + " (TikTok)",
		Status:  core.StatusAvailable,
		Details: "Appears free (demo).",
	}

	return []core.CheckResult{instagram, tiktok}
}
