package model

// Condition is a coarse weather condition.
type Condition string

// Known conditions.
const (
	ConditionSunny  Condition = "sunny"
	ConditionCloudy Condition = "cloudy"
	ConditionRainy  Condition = "rainy"
	ConditionWindy  Condition = "windy"
	ConditionSnowy  Condition = "snowy"
)

// Conditions lists every known condition.
func Conditions() []Condition {
	return []Condition{ConditionSunny, ConditionCloudy, ConditionRainy, ConditionWindy, ConditionSnowy}
}

// Known reports whether c is one of the known conditions.
func (c Condition) Known() bool {
	switch c {
	case ConditionSunny, ConditionCloudy, ConditionRainy, ConditionWindy, ConditionSnowy:
		return true
	}
	return false
}

// WeatherSnapshot is the current weather as reported by a provider.
// Temperature is in degrees Fahrenheit.
type WeatherSnapshot struct {
	Temperature float64   `json:"temperature"`
	Condition   Condition `json:"condition"`
	Humidity    int       `json:"humidity"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
}

// DescribeWeather returns a short styling hint for the condition.
func DescribeWeather(c Condition, temperature float64) string {
	switch c {
	case ConditionSunny:
		if temperature > 75 {
			return "Perfect for light fabrics"
		}
		return "Great for layering"
	case ConditionCloudy:
		return "Ideal for transitional pieces"
	case ConditionRainy:
		return "Don't forget your umbrella and waterproof shoes"
	case ConditionWindy:
		return "Layer up and secure loose accessories"
	case ConditionSnowy:
		return "Time for cozy sweaters and boots"
	}
	return "Check the weather before heading out"
}
