// Package scoring computes the additive fitness score of one wardrobe item
// for a given weather, occasion and set of preferences.
package scoring

import (
	"math"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// Default weights.
const (
	defaultFavoriteColorBonus  = 20
	defaultPreferredStyleBonus = 15
	defaultFavoriteBonus       = 10
	defaultWearPenaltyPerUse   = 2
	defaultWearPenaltyCap      = 20
	defaultCoordinationBonus   = 20
)

// Weights are the tunable bonus and penalty sizes.
type Weights struct {
	FavoriteColor     float64
	PreferredStyle    float64
	Favorite          float64
	WearPenaltyPerUse float64
	WearPenaltyCap    float64
	Coordination      float64
}

// DefaultWeights returns the standard weights.
func DefaultWeights() Weights {
	return Weights{
		FavoriteColor:     defaultFavoriteColorBonus,
		PreferredStyle:    defaultPreferredStyleBonus,
		Favorite:          defaultFavoriteBonus,
		WearPenaltyPerUse: defaultWearPenaltyPerUse,
		WearPenaltyCap:    defaultWearPenaltyCap,
		Coordination:      defaultCoordinationBonus,
	}
}

// Option applies a configuration option to the HeuristicScorer.
type Option func(*HeuristicScorer)

// WithWeights replaces the default weights. Negative values are ignored.
func WithWeights(w Weights) Option {
	return func(s *HeuristicScorer) {
		set := func(dst *float64, v float64) {
			if v >= 0 {
				*dst = v
			}
		}
		set(&s.weights.FavoriteColor, w.FavoriteColor)
		set(&s.weights.PreferredStyle, w.PreferredStyle)
		set(&s.weights.Favorite, w.Favorite)
		set(&s.weights.WearPenaltyPerUse, w.WearPenaltyPerUse)
		set(&s.weights.WearPenaltyCap, w.WearPenaltyCap)
		set(&s.weights.Coordination, w.Coordination)
	}
}

// Context is everything a score depends on besides the item itself.
type Context struct {
	Weather     model.WeatherSnapshot
	Occasion    model.Occasion
	Preferences *model.Preferences
	// Companion is an already chosen item used for color coordination.
	Companion *model.WardrobeItem
}

// Scorer scores a candidate item. Scores are only meaningful relative to
// other candidates for the same slot.
type Scorer interface {
	Score(it *model.WardrobeItem, c Context) model.Breakdown
}

// HeuristicScorer implements Scorer with fixed lookup tables. It holds no
// mutable state and is safe for concurrent use.
type HeuristicScorer struct {
	weights Weights
}

// NewHeuristicScorer creates a scorer with configuration options.
func NewHeuristicScorer(opts ...Option) *HeuristicScorer {
	s := &HeuristicScorer{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the weights in effect.
func (s *HeuristicScorer) Weights() Weights {
	return s.weights
}

// Score computes the score breakdown of it.
func (s *HeuristicScorer) Score(it *model.WardrobeItem, c Context) model.Breakdown {
	b := model.Breakdown{
		Weather:  WeatherFit(it, c.Weather.Condition),
		Occasion: OccasionFit(it, c.Occasion),
	}

	if c.Preferences.LikesColor(it.Color) {
		b.Preference += s.weights.FavoriteColor
	}
	if c.Preferences.PrefersStyle(it.Style) {
		b.Preference += s.weights.PreferredStyle
	}

	if it.Favorite {
		b.Favorite = s.weights.Favorite
	}

	if it.TimesWorn > 0 {
		b.Overuse = -math.Min(float64(it.TimesWorn)*s.weights.WearPenaltyPerUse, s.weights.WearPenaltyCap)
	}

	if c.Companion != nil && Coordinates(c.Companion.Color, it.Color) {
		b.Coordination = s.weights.Coordination
	}
	return b
}
