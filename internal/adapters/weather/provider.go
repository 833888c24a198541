// Package weather supplies the current weather snapshot to the
// recommendation service.
package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// Provider returns the current weather.
type Provider interface {
	Current(ctx context.Context) (model.WeatherSnapshot, error)
	Name() string
}

// openWeatherConditions maps OpenWeather "main" groups onto conditions.
var openWeatherConditions = map[string]model.Condition{
	"clear":        model.ConditionSunny,
	"clouds":       model.ConditionCloudy,
	"mist":         model.ConditionCloudy,
	"smoke":        model.ConditionCloudy,
	"haze":         model.ConditionCloudy,
	"dust":         model.ConditionCloudy,
	"fog":          model.ConditionCloudy,
	"sand":         model.ConditionCloudy,
	"ash":          model.ConditionCloudy,
	"rain":         model.ConditionRainy,
	"drizzle":      model.ConditionRainy,
	"thunderstorm": model.ConditionRainy,
	"snow":         model.ConditionSnowy,
	"squall":       model.ConditionWindy,
	"tornado":      model.ConditionWindy,
}

// MapCondition converts an OpenWeather "main" group to a condition.
// Unrecognized groups read as sunny.
func MapCondition(main string) model.Condition {
	if c, ok := openWeatherConditions[strings.ToLower(strings.TrimSpace(main))]; ok {
		return c
	}
	return model.ConditionSunny
}

// ParseCondition parses a user supplied condition name.
func ParseCondition(s string) (model.Condition, error) {
	c := model.Condition(strings.ToLower(strings.TrimSpace(s)))
	if !c.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCondition, s)
	}
	return c, nil
}

// normalize fills a missing description.
func normalize(s model.WeatherSnapshot) model.WeatherSnapshot {
	if s.Description == "" {
		s.Description = model.DescribeWeather(s.Condition, s.Temperature)
	}
	return s
}
