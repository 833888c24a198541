package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/loadtest"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/logger"
)

func newLoadCommand() *cobra.Command {
	cfg := loadtest.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Drive a running server with concurrent recommendations",
		Long: `Seed a running server's wardrobe, request recommendations concurrently
and race several confirmations of each one. Every answer is checked:
confidence stays in range, slots match the branch, and each
recommendation is confirmed exactly once.

Examples:
  closetmuse load
  closetmuse load --url http://localhost:8080 --requests 2000 --workers 32
  closetmuse load --seed 7 --output reports/run.json --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.Nop()
			if cfg.Verbose {
				if err := logger.InitWithWriter(cmd.ErrOrStderr()); err != nil {
					return err
				}
				log = logger.Named("loadtest")
			}

			report, err := loadtest.Run(cmd.Context(), cfg, log)
			renderReport(cmd.OutOrStdout(), report)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "base URL of the server")
	f.IntVar(&cfg.Items, "items", cfg.Items, "wardrobe items to seed")
	f.IntVar(&cfg.Requests, "requests", cfg.Requests, "recommendations to request")
	f.IntVar(&cfg.Confirmers, "confirmers", cfg.Confirmers, "concurrent confirmations raced per recommendation")
	f.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent workers")
	f.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP request timeout")
	f.Uint64Var(&cfg.Seed, "seed", uint64(os.Getpid()), "seed for generated wardrobes and requests")
	f.StringVar(&cfg.OutputFile, "output", "", "write the JSON report to this file")
	f.BoolVar(&cfg.Verbose, "verbose", false, "log progress and failed calls to stderr")
	return cmd
}

func renderReport(w io.Writer, r loadtest.Report) {
	p := newPalette(w)

	fmt.Fprintln(w, p.title.Render("Load test report"))
	row := func(label string, v any) {
		fmt.Fprintf(w, "  %s%v\n", p.wide.Render(label), v)
	}
	row("items", r.ItemsSeeded)
	row("recommended", fmt.Sprintf("%d (%d empty, %d failed)", r.Recommendations, r.EmptyRecommendations, r.RecommendFailed))
	row("confirmed", fmt.Sprintf("%d (%d duplicates rejected, %d failed)", r.Confirmed, r.Duplicates, r.ConfirmFailed))
	row("outfits", r.OutfitsListed)
	row("duration", r.Duration.Round(time.Millisecond))
	row("rate", fmt.Sprintf("%.1f req/s", r.RequestsPerSecond()))

	if len(r.Violations) == 0 {
		fmt.Fprintln(w, p.dim.Render("  no violations"))
		return
	}
	fmt.Fprintln(w, p.title.Render(fmt.Sprintf("%d violations", len(r.Violations))))
	for _, v := range r.Violations {
		fmt.Fprintf(w, "  - %s\n", v)
	}
}
