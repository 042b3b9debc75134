package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var extendedVersion bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("brandcheck %s\n", versionInfo.Version)

		if extendedVersion {
			fmt.Printf("  commit:     %s\n", versionInfo.Commit)
			fmt.Printf("  built:      %s\n", versionInfo.BuildDate)
			fmt.Printf("  go version: %s\n", runtime.Version())
			fmt.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&extendedVersion, "extended", "e", false, "show extended build information")
}
