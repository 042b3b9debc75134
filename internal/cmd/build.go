package cmd

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/brandcheck/brandcheck/internal/config"
	"github.com/brandcheck/brandcheck/internal/core/checker"
	"github.com/brandcheck/brandcheck/internal/core/engine"
	"github.com/brandcheck/brandcheck/internal/trademark"
)

// buildOrchestrator assembles the check engine from configuration.
func buildOrchestrator(cfg *config.Config, logger *zap.Logger) *engine.Orchestrator {
	return &engine.Orchestrator{
		Trademark: buildTrademarkChecker(cfg, logger),
		Business:  &checker.BusinessNameChecker{},
		Domains:   &checker.DomainChecker{},
		Socials:   &checker.SocialChecker{},
		Logger:    logger,
	}
}

// buildTrademarkChecker constructs the trademark checker, degrading to the
// unavailable stub when credentials or endpoints are missing so the rest
// of the checks still run.
func buildTrademarkChecker(cfg *config.Config, logger *zap.Logger) engine.TrademarkChecker {
	tokenURL, baseURL := cfg.IPAustralia.Endpoints()

	chk, err := trademark.New(trademark.Config{
		TokenURL:     tokenURL,
		BaseURL:      baseURL,
		ClientID:     cfg.IPAustralia.ClientID,
		ClientSecret: cfg.IPAustralia.ClientSecret,
	}, &http.Client{Timeout: cfg.IPAustralia.Timeout}, logger)
	if err != nil {
		logger.Warn("trademark checker unavailable", zap.Error(err))
		return trademark.Unavailable{Reason: err.Error()}
	}

	return chk
}
