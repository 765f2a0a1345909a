package cli

import (
	"github.com/spf13/cobra"

	"github.com/redex-go/flowcore/internal/analytics"
	"github.com/redex-go/flowcore/internal/diagnostic"
	"github.com/redex-go/flowcore/internal/fixture"
	"github.com/redex-go/flowcore/internal/output"
	"github.com/redex-go/flowcore/ir"
)

var lintCmd = &cobra.Command{
	Use:   "lint <fixture.yaml>",
	Short: "Check a fixture for structural violations without building a graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := loggerFromFlags(cmd)
		path := args[0]
		format, _ := cmd.Flags().GetString("format")

		analytics.ReportEvent(analytics.LintStarted)

		var items []*ir.Item
		err := logger.Time(output.PhaseLoadFixture, path, func() error {
			var loadErr error
			items, loadErr = fixture.LoadFile(path)
			return loadErr
		})
		if err != nil {
			analytics.ReportEventWithProperties(analytics.LintFailed, map[string]interface{}{"phase": "load"})
			return fail("%s: %w", path, err)
		}

		var report *diagnostic.Report
		_ = logger.Time(output.PhaseLint, path, func() error {
			report = diagnostic.Lint(items)
			return nil
		})
		logger.PrintTimingSummary()

		var writeErr error
		switch format {
		case "sarif":
			writeErr = diagnostic.WriteSARIF(cmd.OutOrStdout(), report)
		case "", "text":
			writeErr = diagnostic.WriteText(cmd.OutOrStdout(), report)
		default:
			return fail("unknown --format %q (want text or sarif)", format)
		}
		if writeErr != nil {
			return fail("%s: writing report: %w", path, writeErr)
		}

		if report.HasFindings() {
			analytics.ReportEventWithProperties(analytics.LintCompleted, map[string]interface{}{
				"finding_count": len(report.Findings),
			})
			return fail("%s: %d finding(s)", path, len(report.Findings))
		}

		analytics.ReportEvent(analytics.LintCompleted)
		return nil
	},
}

func init() {
	lintCmd.Flags().String("format", "text", "Report format: text or sarif")
	rootCmd.AddCommand(lintCmd)
}
