// Package cmd implements the brandcheck CLI.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/brandcheck/brandcheck/internal/config"
	"github.com/brandcheck/brandcheck/internal/observability"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config

	// Version info set by the main package.
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by the main package to set version information.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// rootCmd represents the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "brandcheck",
	Short: "Check brand name availability",
	Long: `brandcheck reports whether a candidate brand name appears to be taken,
available, or similar to existing registrations across business names,
trademarks, domains, and social handles.

Use the subcommands to perform specific operations.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/brandcheck/brandcheck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig loads configuration and initializes the CLI logger.
func initConfig() {
	observability.InitCLILogger(verbose)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		observability.CLILogger.Error("Failed to load configuration", zap.Error(err))
		os.Exit(1)
	}

	appConfig = cfg
}
