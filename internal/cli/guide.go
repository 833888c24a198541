package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/adapters/weather"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

func newGuideCommand() *cobra.Command {
	var (
		condition string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show what to wear and avoid in a weather condition",
		Long: `Show general dressing guidance for a weather condition.

Examples:
  closetmuse guide --condition rainy
  closetmuse guide -c snowy --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := weather.ParseCondition(condition)
			if err != nil {
				return fmt.Errorf("%w: --condition: %w", ErrInvalidFlag, err)
			}
			g := model.GuidanceFor(c)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(g)
			}
			renderGuidance(out, c, g)
			return nil
		},
	}
	cmd.Flags().StringVarP(&condition, "condition", "c", "", "sunny, cloudy, rainy, windy or snowy")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the guidance as JSON")
	_ = cmd.MarkFlagRequired("condition")
	return cmd
}
