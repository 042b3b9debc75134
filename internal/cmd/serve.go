package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brandcheck/brandcheck/internal/observability"
	"github.com/brandcheck/brandcheck/internal/server"
	"github.com/brandcheck/brandcheck/internal/server/handlers"
	"github.com/brandcheck/brandcheck/internal/trademark"
)

// trademarkConfigChecker reports whether the trademark registry
// credentials resolve to a usable checker.
type trademarkConfigChecker struct {
	err error
}

func (c trademarkConfigChecker) CheckHealth(ctx context.Context) error {
	return c.err
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server with graceful shutdown support.

Ctrl+C (SIGINT) or SIGTERM triggers a graceful shutdown: in-flight
requests are drained within the configured shutdown timeout and logs are
flushed before exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("host") {
			appConfig.Server.Host, _ = cmd.Flags().GetString("host")
		}
		if cmd.Flags().Changed("port") {
			appConfig.Server.Port, _ = cmd.Flags().GetInt("port")
		}

		observability.InitServerLogger(appConfig.Logging.Level)
		logger := observability.ServerLogger

		logger.Info("Initializing server",
			zap.String("version", versionInfo.Version),
			zap.String("host", appConfig.Server.Host),
			zap.Int("port", appConfig.Server.Port),
			zap.String("ipaustralia_env", appConfig.IPAustralia.Env))

		orchestrator := buildOrchestrator(appConfig, logger)

		handlers.InitHealthManager(versionInfo.Version)
		handlers.SetVersionInfo(versionInfo.Version, versionInfo.Commit, versionInfo.BuildDate)

		// Credentials left entirely empty mean the demo checkers run
		// alone; only a partially configured registry fails readiness.
		if appConfig.IPAustralia.ClientID != "" || appConfig.IPAustralia.ClientSecret != "" {
			tokenURL, baseURL := appConfig.IPAustralia.Endpoints()
			_, tmErr := trademark.New(trademark.Config{
				TokenURL:     tokenURL,
				BaseURL:      baseURL,
				ClientID:     appConfig.IPAustralia.ClientID,
				ClientSecret: appConfig.IPAustralia.ClientSecret,
			}, nil, logger)
			handlers.GetHealthManager().RegisterChecker("trademark_config", trademarkConfigChecker{err: tmErr})
		}

		srv := server.New(appConfig.Server, orchestrator)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case <-ctx.Done():
			logger.Info("Shutdown signal received")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Server shutdown failed", zap.Error(err))
				return err
			}
			logger.Info("HTTP server stopped gracefully")
		}

		// Sync errors on stderr are benign.
		_ = logger.Sync()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "Host interface to bind (overrides config)")
	serveCmd.Flags().Int("port", 0, "Port to listen on (overrides config)")
}
