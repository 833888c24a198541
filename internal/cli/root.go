// Package cli implements the closetmuse command line: one-shot outfit
// recommendations from a wardrobe file and weather dressing guidance.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the closetmuse command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "closetmuse",
		Short: "weather-aware outfit recommendations",
		Long: `closetmuse - weather-aware outfit recommendations
  - recommend  pick one item per slot for the weather and occasion
  - guide      what to wear and avoid in a weather condition
  - load       drive a running server and check its answers

Settings are read from CLOSETMUSE_ environment variables and the YAML file
named by CLOSETMUSE_CONFIG.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRecommendCommand())
	root.AddCommand(newGuideCommand())
	root.AddCommand(newLoadCommand())
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
