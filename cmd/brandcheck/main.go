package main

import (
	"os"

	"github.com/brandcheck/brandcheck/internal/cmd"
	"github.com/brandcheck/brandcheck/internal/server/handlers"
)

// Build information, set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, buildDate)
	handlers.SetVersionInfo(version, commit, buildDate)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
