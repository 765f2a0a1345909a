// Package cli implements the flowcore companion CLI: a thin cobra wrapper
// that exercises the lattice/ir/cfg library end to end against YAML
// fixtures. None of this package is part of the core; the core exposes no
// CLI, environment variables, or on-disk formats of its own.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redex-go/flowcore/internal/analytics"
	"github.com/redex-go/flowcore/internal/output"
)

var (
	// Version and GitCommit are overridden at build time via -ldflags.
	Version   = "0.1.0"
	GitCommit = "HEAD"
)

var rootCmd = &cobra.Command{
	Use:   "flowcore",
	Short: "A constant-propagation lattice and control-flow-graph toolkit",
	Long: `flowcore builds control-flow graphs and a three-level constant-
propagation lattice from a decoder-agnostic instruction stream.

This binary is a thin exerciser around the library: it loads a YAML
fixture, runs cfg.Build/ComputeDominators or the linter, and prints the
result. It is not part of the core and carries none of its guarantees.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		disableMetrics, _ := cmd.Flags().GetBool("disable-metrics")
		analytics.LoadEnvFile()
		analytics.Init(disableMetrics)
		analytics.SetVersion(Version)

		noBanner, _ := cmd.Flags().GetBool("no-banner")
		logger := output.NewLogger(output.VerbosityDefault)
		if output.ShouldShowBanner(logger.IsTTY(), noBanner) {
			output.PrintBanner(logger.Writer(), Version, output.DefaultBannerOptions())
		}
	},
}

// Execute runs the root command; main.go's only job is to call this.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("disable-metrics", false, "Disable anonymous usage metrics")
	rootCmd.PersistentFlags().Bool("verbose", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output, including timing")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Disable the startup banner")
}

func loggerFromFlags(cmd *cobra.Command) *output.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	debug, _ := cmd.Flags().GetBool("debug")
	verbosity := output.VerbosityDefault
	switch {
	case debug:
		verbosity = output.VerbosityDebug
	case verbose:
		verbosity = output.VerbosityVerbose
	}
	return output.NewLogger(verbosity)
}

func fail(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
