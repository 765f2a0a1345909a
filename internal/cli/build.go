package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/redex-go/flowcore/cfg"
	"github.com/redex-go/flowcore/internal/analytics"
	"github.com/redex-go/flowcore/internal/fixture"
	"github.com/redex-go/flowcore/internal/output"
	"github.com/redex-go/flowcore/ir"
)

var buildCmd = &cobra.Command{
	Use:   "build <fixture.yaml>...",
	Short: "Build a control-flow graph from one or more fixtures",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := loggerFromFlags(cmd)
		dot, _ := cmd.Flags().GetBool("dot")

		analytics.ReportEventWithProperties(analytics.BuildStarted, map[string]interface{}{
			"fixture_count": len(args),
		})

		batch := len(args) > 1
		if batch {
			logger.BeginBatch("building fixtures", len(args))
		}

		for _, path := range args {
			if err := runBuild(cmd, logger, path, dot); err != nil {
				analytics.ReportEventWithProperties(analytics.BuildFailed, map[string]interface{}{"phase": "build"})
				return err
			}
			if batch {
				logger.AdvanceBatch()
			}
		}
		if batch {
			logger.EndBatch()
		}

		analytics.ReportEvent(analytics.BuildCompleted)
		return nil
	},
}

func runBuild(cmd *cobra.Command, logger *output.Logger, path string, dot bool) error {
	logger.Announce("building %s", filepath.Base(path))

	var items []*ir.Item
	if err := logger.Time(output.PhaseLoadFixture, path, func() error {
		var loadErr error
		items, loadErr = fixture.LoadFile(path)
		return loadErr
	}); err != nil {
		return fail("%s: %w", path, err)
	}

	var g *cfg.Graph
	if err := logger.Time(output.PhaseBuildGraph, path, func() error {
		g = cfg.Build(items)
		return nil
	}); err != nil {
		return fail("%s: %w", path, err)
	}

	blocks := g.BlockIDs()
	var edges int
	for _, id := range blocks {
		edges += len(g.Successors(id))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d blocks, %d edges\n", path, len(blocks), edges)

	if dot {
		if err := cfg.WriteDOT(cmd.OutOrStdout(), g); err != nil {
			return fail("%s: writing DOT: %w", path, err)
		}
	}
	logger.PrintTimingSummary()
	return nil
}

func init() {
	buildCmd.Flags().Bool("dot", false, "Print the graph's DOT rendering")
	rootCmd.AddCommand(buildCmd)
}
