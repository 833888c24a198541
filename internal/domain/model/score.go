package model

// Breakdown records each additive factor of an item's score.
type Breakdown struct {
	Weather      float64 `json:"weather"`
	Occasion     float64 `json:"occasion"`
	Preference   float64 `json:"preference"`
	Favorite     float64 `json:"favorite"`
	Overuse      float64 `json:"overuse"`
	Coordination float64 `json:"coordination"`
}

// Total sums the factors. Overuse is stored as a non-positive value.
func (b Breakdown) Total() float64 {
	return b.Weather + b.Occasion + b.Preference + b.Favorite + b.Overuse + b.Coordination
}
