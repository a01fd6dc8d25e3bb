package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ratesrisk",
	Short: "Curve-based discounting and sensitivity toolkit",
	Long: `Ratesrisk prices cash flows off interpolated zero curves and reports
bucketed curve sensitivities.

It provides tools for:
  - Pricing fixed coupon periods against a YAML market snapshot
  - Bucketed zero-rate sensitivities, analytic and finite-difference
  - Dumping curve values and discount factors on a time grid
  - Journaling runs to SQLite for cross-snapshot regression checks`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
