// Package engine coordinates the individual checks behind one aggregate
// brand-availability result.
package engine

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/brandcheck/brandcheck/internal/core"
	"github.com/brandcheck/brandcheck/internal/core/checker"
)

// TrademarkChecker resolves trademark availability for a candidate name.
// Implementations never fail past their boundary; failure modes are
// encoded in the returned result.
type TrademarkChecker interface {
	Check(ctx context.Context, name string) core.CheckResult
}

// Orchestrator runs all configured checks for a name.
type Orchestrator struct {
	Trademark TrademarkChecker
	Business  *checker.BusinessNameChecker
	Domains   *checker.DomainChecker
	Socials   *checker.SocialChecker
	Logger    *zap.Logger
	Clock     func() time.Time
}

// Check aggregates the business-name, trademark, domain, and social checks.
func (o *Orchestrator) Check(ctx context.Context, name string) (*core.AggregatedResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, errors.New("name is required")
	}

	startedAt := o.now()

	result := &core.AggregatedResult{Name: trimmed}
	result.BusinessName = o.business().Check(ctx, trimmed)
	result.Trademark = o.trademark(ctx, trimmed)
	result.Domains = o.domains().Check(ctx, trimmed)
	result.Socials = o.socials().Check(ctx, trimmed)

	if o.Logger != nil {
		o.Logger.Debug("brand check completed",
			zap.String("name", trimmed),
			zap.String("trademark_status", string(result.Trademark.Status)),
			zap.Duration("elapsed", o.now().Sub(startedAt)))
	}

	return result, nil
}

func (o *Orchestrator) trademark(ctx context.Context, name string) core.CheckResult {
	if o.Trademark == nil {
		return core.CheckResult{
			Label:   "Trademark (IP Australia)",
			Status:  core.StatusUnknown,
			Details: "trademark checker not configured",
		}
	}
	return o.Trademark.Check(ctx, name)
}

func (o *Orchestrator) business() *checker.BusinessNameChecker {
	if o.Business != nil {
		return o.Business
	}
	return &checker.BusinessNameChecker{}
}

func (o *Orchestrator) domains() *checker.DomainChecker {
	if o.Domains != nil {
		return o.Domains
	}
	return &checker.DomainChecker{}
}

func (o *Orchestrator) socials() *checker.SocialChecker {
	if o.Socials != nil {
		return o.Socials
	}
	return &checker.SocialChecker{}
}

func (o *Orchestrator) now() time.Time {
	if o != nil && o.Clock != nil {
		return o.Clock()
	}
	return time.Now().UTC()
}
