package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/adapters/repository"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/adapters/weather"
	service "github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/app"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/config"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/outfit"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/scoring"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/logger"
)

type recommendOptions struct {
	wardrobe        string
	occasion        string
	condition       string
	temp            float64
	humidity        int
	favoriteColors  []string
	preferredStyles []string
	asOf            string
	json            bool
	explain         bool
}

func newRecommendCommand() *cobra.Command {
	opts := &recommendOptions{}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend an outfit from a wardrobe file",
		Long: `Recommend one item per outfit slot from a wardrobe file.

Without --condition the configured weather provider is asked for the
current weather. Items worn within the configured cooldown are skipped.

Examples:
  closetmuse recommend --wardrobe wardrobe.yaml
  closetmuse recommend -w wardrobe.yaml --occasion work --condition rainy --temp 54
  closetmuse recommend -w wardrobe.yaml --favorite-color Navy --explain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecommend(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.wardrobe, "wardrobe", "w", "", "wardrobe YAML or JSON file (default wardrobe_file)")
	f.StringVarP(&opts.occasion, "occasion", "o", "", "casual, work, date, party or formal; other values score neutrally (default default_occasion)")
	f.StringVarP(&opts.condition, "condition", "c", "", "sunny, cloudy, rainy, windy or snowy (default: ask the weather provider)")
	f.Float64Var(&opts.temp, "temp", 72, "temperature in Fahrenheit, used with --condition")
	f.IntVar(&opts.humidity, "humidity", 45, "relative humidity in percent, used with --condition")
	f.StringSliceVar(&opts.favoriteColors, "favorite-color", nil, "favorite color (repeatable)")
	f.StringSliceVar(&opts.preferredStyles, "preferred-style", nil, "preferred style tag (repeatable)")
	f.StringVar(&opts.asOf, "as-of", "", "RFC3339 instant availability is judged at (default now)")
	f.BoolVar(&opts.json, "json", false, "print the recommendation as JSON")
	f.BoolVar(&opts.explain, "explain", false, "show the score breakdown of each chosen item")
	return cmd
}

func runRecommend(cmd *cobra.Command, opts *recommendOptions) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	path := opts.wardrobe
	if path == "" {
		path = cfg.WardrobeFile
	}
	if path == "" {
		return ErrNoWardrobe
	}
	items, err := repository.LoadWardrobeFile(path)
	if err != nil {
		return err
	}

	snap, err := opts.weather(ctx, cfg)
	if err != nil {
		return err
	}
	prefs, err := opts.preferences()
	if err != nil {
		return err
	}

	asOf := time.Now()
	if opts.asOf != "" {
		if asOf, err = time.Parse(time.RFC3339, opts.asOf); err != nil {
			return fmt.Errorf("%w: --as-of: %w", ErrInvalidFlag, err)
		}
	}

	occasion := model.Occasion(opts.occasion)
	if occasion == "" {
		occasion = model.Occasion(cfg.DefaultOccasion)
	}

	engine := outfit.New(
		outfit.WithScorer(scoring.NewHeuristicScorer(scoring.WithWeights(cfg.Weights()))),
		outfit.WithCooldown(cfg.Cooldown()),
	)
	rec, err := engine.Recommend(outfit.Request{
		Wardrobe:    items,
		Weather:     &snap,
		Occasion:    occasion,
		Preferences: prefs,
		AsOf:        asOf,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		return writeRecommendationJSON(out, rec, snap, opts.explain)
	}
	renderRecommendation(out, rec, snap, opts.explain)
	return nil
}

func (o *recommendOptions) weather(ctx context.Context, cfg *config.Config) (model.WeatherSnapshot, error) {
	if o.condition == "" {
		p, err := service.NewWeatherProvider(cfg, logger.Nop())
		if err != nil {
			return model.WeatherSnapshot{}, err
		}
		return p.Current(ctx)
	}

	c, err := weather.ParseCondition(o.condition)
	if err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("%w: --condition: %w", ErrInvalidFlag, err)
	}
	return model.WeatherSnapshot{
		Temperature: o.temp,
		Condition:   c,
		Humidity:    o.humidity,
		Description: model.DescribeWeather(c, o.temp),
	}, nil
}

func (o *recommendOptions) preferences() (*model.Preferences, error) {
	if len(o.favoriteColors) == 0 && len(o.preferredStyles) == 0 {
		return nil, nil
	}
	p := &model.Preferences{FavoriteColors: o.favoriteColors}
	for _, s := range o.preferredStyles {
		style := model.Style(s)
		if !style.Known() {
			return nil, fmt.Errorf("%w: --preferred-style %q", ErrInvalidFlag, s)
		}
		p.PreferredStyles = append(p.PreferredStyles, style)
	}
	return p, nil
}

type recommendationJSON struct {
	Items      map[model.Slot]*model.WardrobeItem `json:"items"`
	Confidence int                                `json:"confidence"`
	Reasoning  []string                           `json:"reasoning"`
	Occasion   string                             `json:"occasion"`
	Style      string                             `json:"style"`
	Branch     model.Branch                       `json:"branch"`
	Empty      bool                               `json:"empty"`
	Weather    model.WeatherSnapshot              `json:"weather"`
	Guidance   model.WeatherGuidance              `json:"guidance"`
	Scores     map[model.Slot]model.Breakdown     `json:"scores,omitempty"`
}

func writeRecommendationJSON(w io.Writer, rec model.Recommendation, snap model.WeatherSnapshot, explain bool) error {
	items := make(map[model.Slot]*model.WardrobeItem, len(rec.Items))
	for slot, it := range rec.Items {
		if it != nil {
			items[slot] = it
		}
	}
	reasoning := rec.Reasoning
	if reasoning == nil {
		reasoning = []string{}
	}
	doc := recommendationJSON{
		Items:      items,
		Confidence: rec.Confidence,
		Reasoning:  reasoning,
		Occasion:   rec.Occasion,
		Style:      rec.Style,
		Branch:     rec.Branch,
		Empty:      rec.Empty(),
		Weather:    snap,
		Guidance:   rec.Guidance,
	}
	if explain {
		doc.Scores = rec.Scores
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
