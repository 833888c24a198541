package model

// WeatherGuidance lists general dressing hints for a weather condition.
type WeatherGuidance struct {
	Recommendations []string `json:"recommendations"`
	Avoid           []string `json:"avoid"`
	Colors          []string `json:"colors"`
}

var guidanceByCondition = map[Condition]WeatherGuidance{
	ConditionSunny: {
		Recommendations: []string{"Light fabrics", "Breathable materials", "Sun hat", "Sunglasses"},
		Avoid:           []string{"Heavy jackets", "Dark colors", "Thick fabrics"},
		Colors:          []string{"Light colors", "Pastels", "White", "Cream"},
	},
	ConditionCloudy: {
		Recommendations: []string{"Layers", "Light cardigan", "Comfortable shoes"},
		Avoid:           []string{"Heavy winter coats", "Shorts in cool weather"},
		Colors:          []string{"Neutral tones", "Soft colors", "Grey", "Beige"},
	},
	ConditionRainy: {
		Recommendations: []string{"Waterproof jacket", "Closed-toe shoes", "Umbrella"},
		Avoid:           []string{"Suede", "Light colors", "Canvas shoes"},
		Colors:          []string{"Dark colors", "Navy", "Black", "Deep tones"},
	},
	ConditionWindy: {
		Recommendations: []string{"Fitted clothing", "Secure accessories", "Layers"},
		Avoid:           []string{"Loose scarves", "Flowing dresses", "Hats"},
		Colors:          []string{"Rich colors", "Bold tones", "Jewel tones"},
	},
	ConditionSnowy: {
		Recommendations: []string{"Warm layers", "Insulated boots", "Gloves", "Scarf"},
		Avoid:           []string{"Thin fabrics", "Open-toe shoes", "Light jackets"},
		Colors:          []string{"Warm colors", "Deep tones", "Rich fabrics"},
	},
}

// GuidanceFor returns the guidance for c. Unknown conditions get the sunny
// guidance. The returned slices are copies.
func GuidanceFor(c Condition) WeatherGuidance {
	g, ok := guidanceByCondition[c]
	if !ok {
		g = guidanceByCondition[ConditionSunny]
	}
	return WeatherGuidance{
		Recommendations: append([]string(nil), g.Recommendations...),
		Avoid:           append([]string(nil), g.Avoid...),
		Colors:          append([]string(nil), g.Colors...),
	}
}
