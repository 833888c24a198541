package loadtest

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// Temperature range of generated weather, in Fahrenheit.
const (
	minTemperature   = 20
	temperatureRange = 80
	maxHumidity      = 100
	preferenceChance = 3 // one request in three carries preferences
)

var (
	colors = []string{"White", "Light Blue", "Navy", "Black", "Beige", "Red", "Grey", "Cream"}

	namesByCategory = map[model.Category][]string{
		model.CategoryTop:       {"Tee", "Oxford Shirt", "Silk Blouse", "Wool Sweater", "Fitted Turtleneck"},
		model.CategoryBottom:    {"Jeans", "Chinos", "Pleated Skirt", "Tailored Trousers"},
		model.CategoryDress:     {"Sundress", "Wrap Dress", "Evening Gown"},
		model.CategoryShoes:     {"Sneakers", "Chelsea Boots", "Leather Sandals", "Loafers"},
		model.CategoryAccessory: {"Sunglasses", "Umbrella", "Wool Scarf", "Watch"},
		model.CategoryPerfume:   {"Eau de Parfum", "Citrus Cologne"},
	}
)

type weatherPayload struct {
	Temperature float64         `json:"temperature"`
	Condition   model.Condition `json:"condition"`
	Humidity    int             `json:"humidity"`
}

type recommendPayload struct {
	Occasion    model.Occasion     `json:"occasion"`
	Preferences *model.Preferences `json:"preferences,omitempty"`
	Weather     *weatherPayload    `json:"weather"`
}

type confirmPayload struct {
	RecommendationID string `json:"recommendation_id"`
	Name             string `json:"name,omitempty"`
}

// recommendation is the part of a recommendation response the run checks.
type recommendation struct {
	ID         string                             `json:"id"`
	Items      map[model.Slot]*model.WardrobeItem `json:"items"`
	Confidence int                                `json:"confidence"`
	Reasoning  []string                           `json:"reasoning"`
	Style      string                             `json:"style"`
	Branch     model.Branch                       `json:"branch"`
	Empty      bool                               `json:"empty"`
}

// generator produces wardrobes and requests from a seeded source.
type generator struct {
	rnd *rand.Rand
}

func newGenerator(seed uint64) *generator {
	return &generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func pick[T any](g *generator, xs []T) T {
	return xs[g.rnd.IntN(len(xs))]
}

// items returns n wardrobe items spread evenly over the categories.
func (g *generator) items(n int) []model.WardrobeItem {
	categories := model.Categories()
	styles := model.Styles()

	out := make([]model.WardrobeItem, n)
	for i := range out {
		c := categories[i%len(categories)]
		color := pick(g, colors)
		out[i] = model.WardrobeItem{
			ID:       "lt-" + uuid.NewString(),
			Name:     color + " " + pick(g, namesByCategory[c]),
			Category: c,
			Color:    color,
			Style:    pick(g, styles),
			Favorite: g.rnd.IntN(5) == 0,
		}
	}
	return out
}

// requests returns n recommendation requests with inline weather.
func (g *generator) requests(n int) []recommendPayload {
	occasions := model.Occasions()
	conditions := model.Conditions()
	styles := model.Styles()

	out := make([]recommendPayload, n)
	for i := range out {
		out[i] = recommendPayload{
			Occasion: pick(g, occasions),
			Weather: &weatherPayload{
				Temperature: float64(minTemperature + g.rnd.IntN(temperatureRange)),
				Condition:   pick(g, conditions),
				Humidity:    g.rnd.IntN(maxHumidity + 1),
			},
		}
		if g.rnd.IntN(preferenceChance) == 0 {
			out[i].Preferences = &model.Preferences{
				FavoriteColors:  []string{pick(g, colors)},
				PreferredStyles: []model.Style{pick(g, styles)},
			}
		}
	}
	return out
}
