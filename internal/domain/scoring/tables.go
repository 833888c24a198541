package scoring

import (
	"strings"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// Neutral scores for values outside the tables.
const (
	neutralWeatherScore  = 10
	neutralOccasionScore = 15
)

// weatherRule scores one item for a fixed (condition, category) pair.
type weatherRule func(it *model.WardrobeItem) float64

func flat(v float64) weatherRule {
	return func(*model.WardrobeItem) float64 { return v }
}

// nameHas scores hit when the lower-cased item name contains any of words.
func nameHas(hit, miss float64, words ...string) weatherRule {
	return func(it *model.WardrobeItem) float64 {
		name := strings.ToLower(it.Name)
		for _, w := range words {
			if strings.Contains(name, w) {
				return hit
			}
		}
		return miss
	}
}

// colorHas scores hit when the lower-cased item color contains any of words.
func colorHas(hit, miss float64, words ...string) weatherRule {
	return func(it *model.WardrobeItem) float64 {
		color := strings.ToLower(it.Color)
		for _, w := range words {
			if strings.Contains(color, w) {
				return hit
			}
		}
		return miss
	}
}

// weatherTable must hold a rule for every known (condition, category) pair.
var weatherTable = map[model.Condition]map[model.Category]weatherRule{
	model.ConditionSunny: {
		model.CategoryTop:       colorHas(25, 10, "light", "white"),
		model.CategoryBottom:    flat(15),
		model.CategoryDress:     colorHas(30, 15, "light"),
		model.CategoryShoes:     nameHas(25, 10, "sandal"),
		model.CategoryAccessory: nameHas(30, 10, "sunglasses"),
		model.CategoryPerfume:   flat(15),
	},
	model.ConditionRainy: {
		model.CategoryTop:       flat(15),
		model.CategoryBottom:    nameHas(20, 15, "jean"),
		model.CategoryDress:     flat(10),
		model.CategoryShoes:     nameHas(30, 5, "boot"),
		model.CategoryAccessory: nameHas(35, 10, "umbrella"),
		model.CategoryPerfume:   flat(15),
	},
	model.ConditionCloudy: {
		model.CategoryTop:       flat(20),
		model.CategoryBottom:    flat(20),
		model.CategoryDress:     flat(15),
		model.CategoryShoes:     flat(15),
		model.CategoryAccessory: flat(15),
		model.CategoryPerfume:   flat(15),
	},
	model.ConditionWindy: {
		model.CategoryTop:       nameHas(25, 10, "fitted"),
		model.CategoryBottom:    flat(20),
		model.CategoryDress:     flat(10),
		model.CategoryShoes:     flat(15),
		model.CategoryAccessory: flat(5),
		model.CategoryPerfume:   flat(15),
	},
	model.ConditionSnowy: {
		model.CategoryTop:       nameHas(30, 10, "sweater"),
		model.CategoryBottom:    flat(15),
		model.CategoryDress:     flat(5),
		model.CategoryShoes:     nameHas(35, 5, "boot"),
		model.CategoryAccessory: nameHas(30, 10, "scarf"),
		model.CategoryPerfume:   flat(15),
	},
}

// occasionTable must hold a score for every known (occasion, style) pair.
// formal/sporty resolves to the neutral score.
var occasionTable = map[model.Occasion]map[model.Style]float64{
	model.OccasionCasual: {
		model.StyleCasual:       30,
		model.StyleElegant:      10,
		model.StyleProfessional: 5,
		model.StyleSporty:       25,
	},
	model.OccasionWork: {
		model.StyleCasual:       10,
		model.StyleElegant:      25,
		model.StyleProfessional: 35,
		model.StyleSporty:       5,
	},
	model.OccasionDate: {
		model.StyleCasual:       15,
		model.StyleElegant:      35,
		model.StyleProfessional: 20,
		model.StyleSporty:       5,
	},
	model.OccasionParty: {
		model.StyleCasual:       10,
		model.StyleElegant:      35,
		model.StyleProfessional: 15,
		model.StyleSporty:       5,
	},
	model.OccasionFormal: {
		model.StyleCasual:       5,
		model.StyleElegant:      35,
		model.StyleProfessional: 30,
		model.StyleSporty:       neutralOccasionScore,
	},
}

// coordinationTable maps a companion's color to the colors that pair with
// it. It is a deliberately small, directional, exact-match heuristic.
var coordinationTable = map[string][]string{
	"Blush Pink": {"Cream", "White", "Navy", "Denim Blue"},
	"Black":      {"White", "Cream", "Red", "Gold"},
	"Navy":       {"White", "Cream", "Blush Pink", "Gold"},
	"White":      {"Black", "Navy", "Blush Pink", "Denim Blue"},
	"Cream":      {"Blush Pink", "Navy", "Brown", "Gold"},
}

// WeatherFit returns the weather score of it under condition c.
func WeatherFit(it *model.WardrobeItem, c model.Condition) float64 {
	rule, ok := weatherTable[c][it.Category]
	if !ok {
		return neutralWeatherScore
	}
	return rule(it)
}

// OccasionFit returns the occasion score of it for occasion o.
func OccasionFit(it *model.WardrobeItem, o model.Occasion) float64 {
	v, ok := occasionTable[o][it.Style]
	if !ok {
		return neutralOccasionScore
	}
	return v
}

// Coordinates reports whether candidateColor pairs with companionColor.
func Coordinates(companionColor, candidateColor string) bool {
	for _, c := range coordinationTable[companionColor] {
		if c == candidateColor {
			return true
		}
	}
	return false
}
