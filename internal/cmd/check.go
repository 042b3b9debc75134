package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandcheck/brandcheck/internal/observability"
	"github.com/brandcheck/brandcheck/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Check brand name availability",
	Long:  "Check a candidate brand name against business names, trademarks, domains, and social handles",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("output", "table", "Output format: table, json, markdown, yaml")
}

func runCheck(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return errors.New("name is required")
	}

	formatValue, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(formatValue)
	if err != nil {
		return err
	}

	orchestrator := buildOrchestrator(appConfig, observability.CLILogger)

	result, err := orchestrator.Check(cmd.Context(), name)
	if err != nil {
		return err
	}

	rendered, err := output.NewFormatter(format).Format(result)
	if err != nil {
		return err
	}

	fmt.Println(rendered)
	return nil
}
