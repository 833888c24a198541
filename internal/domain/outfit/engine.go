// Package outfit assembles a complete outfit from a wardrobe snapshot.
//
// The assembler first decides between a dress and separates, then fills
// shoes, accessory and perfume independently. Every filled slot adds one
// reasoning sentence in selection order. The engine reads its inputs only
// and keeps no state between calls, so one Engine may serve any number of
// concurrent callers.
package outfit

import (
	"fmt"
	"math"
	"time"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/availability"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/scoring"
)

// Dress branch thresholds.
const dressWeatherThreshold = 65

// Request is the input of one recommendation.
type Request struct {
	// Wardrobe must be non-nil; an empty slice is a valid, empty wardrobe.
	Wardrobe    []model.WardrobeItem
	Weather     *model.WeatherSnapshot
	Occasion    model.Occasion
	Preferences *model.Preferences
	// AsOf is the instant availability is judged against.
	AsOf time.Time
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithScorer replaces the default heuristic scorer.
func WithScorer(s scoring.Scorer) Option {
	return func(e *Engine) {
		if s != nil {
			e.scorer = s
		}
	}
}

// WithCooldown sets how long an item rests after being worn. Values under a
// millisecond are ignored.
func WithCooldown(d time.Duration) Option {
	return func(e *Engine) {
		if d >= time.Millisecond {
			e.cooldown = d
		}
	}
}

// Engine recommends outfits.
type Engine struct {
	scorer   scoring.Scorer
	cooldown time.Duration
}

// New creates an Engine with configuration options.
func New(opts ...Option) *Engine {
	e := &Engine{
		scorer:   scoring.NewHeuristicScorer(),
		cooldown: availability.DefaultCooldown,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend builds an outfit for req. It fails only on malformed requests;
// a wardrobe with nothing eligible yields an empty recommendation.
func (e *Engine) Recommend(req Request) (model.Recommendation, error) {
	if err := req.validate(); err != nil {
		return model.Recommendation{}, err
	}

	occasion := req.Occasion
	if occasion == "" {
		occasion = model.OccasionCasual
	}
	weather := *req.Weather

	a := assembly{
		scorer:    e.scorer,
		pools:     availability.Pools(availability.Filter(req.Wardrobe, req.AsOf, e.cooldown)),
		ctx: scoring.Context{
			Weather:     weather,
			Occasion:    occasion,
			Preferences: req.Preferences,
		},
		items:     make(map[model.Slot]*model.WardrobeItem),
		scores:    make(map[model.Slot]model.Breakdown),
		reasoning: make([]string, 0, len(model.Slots())),
	}

	branch := ChooseBranch(occasion, weather, len(a.pools[model.CategoryDress]) > 0)
	if branch == model.BranchDress {
		if dress := a.pick(model.SlotDress, model.CategoryDress, nil); dress != nil {
			a.explain(fmt.Sprintf("Selected %s for a complete %s look", dress.Name, occasion))
		}
	} else {
		top := a.pick(model.SlotTop, model.CategoryTop, nil)
		if top != nil {
			a.explain(fmt.Sprintf("Chose %s as it suits %s weather", top.Name, weather.Condition))
		}
		if bottom := a.pick(model.SlotBottom, model.CategoryBottom, top); bottom != nil {
			a.explain(fmt.Sprintf("Paired with %s for the %s occasion", bottom.Name, occasion))
		}
	}

	if shoes := a.pick(model.SlotShoes, model.CategoryShoes, nil); shoes != nil {
		a.explain(fmt.Sprintf("%s complement the overall style", shoes.Name))
	}
	if acc := a.pick(model.SlotAccessory, model.CategoryAccessory, nil); acc != nil {
		a.explain(fmt.Sprintf("Added %s for a polished touch", acc.Name))
	}
	if perfume := a.pick(model.SlotPerfume, model.CategoryPerfume, nil); perfume != nil {
		a.explain(fmt.Sprintf("%s matches the %s vibe", perfume.Name, occasion))
	}

	rec := model.Recommendation{
		Items:     a.items,
		Reasoning: a.reasoning,
		Occasion:  occasion.Label(),
		Branch:    branch,
		Guidance:  model.GuidanceFor(weather.Condition),
		Scores:    a.scores,
	}
	filled := rec.Filled()
	rec.Confidence = Confidence(filled, weather)
	rec.Style = ClassifyStyle(filled)
	return rec, nil
}

// ChooseBranch picks the dress branch for date, party and formal occasions
// whether or not a dress is available; such outfits are left without a
// primary garment rather than falling back to separates. Casual occasions
// on warm sunny days get the dress branch only when a dress is available.
// Everything else gets separates.
func ChooseBranch(o model.Occasion, w model.WeatherSnapshot, dressAvailable bool) model.Branch {
	switch o {
	case model.OccasionDate, model.OccasionParty, model.OccasionFormal:
		return model.BranchDress
	case model.OccasionCasual:
		if dressAvailable && w.Condition == model.ConditionSunny && w.Temperature > dressWeatherThreshold {
			return model.BranchDress
		}
	}
	return model.BranchSeparates
}

func (r Request) validate() error {
	switch {
	case r.Wardrobe == nil:
		return ErrMissingWardrobe
	case r.Weather == nil:
		return ErrMissingWeather
	case math.IsNaN(r.Weather.Temperature) || math.IsInf(r.Weather.Temperature, 0):
		return ErrInvalidWeather
	case r.AsOf.IsZero():
		return ErrMissingAsOf
	}
	return nil
}

// assembly accumulates the state of one Recommend call.
type assembly struct {
	scorer    scoring.Scorer
	pools     map[model.Category][]*model.WardrobeItem
	ctx       scoring.Context
	items     map[model.Slot]*model.WardrobeItem
	scores    map[model.Slot]model.Breakdown
	reasoning []string
}

func (a *assembly) pick(slot model.Slot, c model.Category, companion *model.WardrobeItem) *model.WardrobeItem {
	ctx := a.ctx
	ctx.Companion = companion
	best, b := SelectBest(a.pools[c], a.scorer, ctx)
	if best == nil {
		return nil
	}
	a.items[slot] = best
	a.scores[slot] = b
	return best
}

func (a *assembly) explain(sentence string) {
	a.reasoning = append(a.reasoning, sentence)
}
