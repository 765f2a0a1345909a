package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redex-go/flowcore/cfg"
	"github.com/redex-go/flowcore/internal/analytics"
	"github.com/redex-go/flowcore/internal/fixture"
	"github.com/redex-go/flowcore/internal/output"
	"github.com/redex-go/flowcore/ir"
)

var domCmd = &cobra.Command{
	Use:   "dom <fixture.yaml>",
	Short: "Print the immediate dominator of every reachable block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := loggerFromFlags(cmd)
		path := args[0]

		analytics.ReportEvent(analytics.DomStarted)

		var items []*ir.Item
		err := logger.Time(output.PhaseLoadFixture, path, func() error {
			var loadErr error
			items, loadErr = fixture.LoadFile(path)
			return loadErr
		})
		if err != nil {
			analytics.ReportEventWithProperties(analytics.DomFailed, map[string]interface{}{"phase": "load"})
			return fail("%s: %w", path, err)
		}

		var g *cfg.Graph
		var dom *cfg.Dominators
		err = logger.Time(output.PhaseBuildGraph, path, func() error {
			g = cfg.Build(items)
			return nil
		})
		if err != nil {
			return fail("%s: %w", path, err)
		}
		err = logger.Time(output.PhaseDominators, path, func() error {
			dom = cfg.ComputeDominators(g)
			return nil
		})
		if err != nil {
			return fail("%s: %w", path, err)
		}

		for _, id := range g.BlockIDs() {
			idom, ok := dom.Immediate(id)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "b%d: no idom\n", id)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "b%d: idom b%d\n", id, idom)
		}
		logger.PrintTimingSummary()

		analytics.ReportEvent(analytics.DomCompleted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(domCmd)
}
