// Package config defines service configuration and its loading.
//
// Conventions:
// - New() returns a Config holding every default.
// - Load(ctx) layers a YAML file and CLOSETMUSE_ environment variables on top.
// - Validate reports problems wrapped in ErrInvalidConfig.
package config

import (
	"fmt"
	"time"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/scoring"
)

// Weather provider names.
const (
	WeatherProviderStatic      = "static"
	WeatherProviderOpenWeather = "openweather"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// WardrobeFile optionally seeds the wardrobe store from a YAML file.
	WardrobeFile string `koanf:"wardrobe_file"`

	// CooldownHours is how long an item rests after being worn.
	CooldownHours int `koanf:"cooldown_hours"`

	// ConfirmDedupeSize bounds the number of remembered confirmations and
	// pending recommendations.
	ConfirmDedupeSize int `koanf:"confirm_dedupe_size"`

	// DefaultOccasion applies when a request names none.
	DefaultOccasion string `koanf:"default_occasion"`

	// WeatherProvider selects the weather source: static or openweather.
	// openweather falls back to the static snapshot when the upstream fails.
	WeatherProvider         string `koanf:"weather_provider"`
	WeatherAPIKey           string `koanf:"weather_api_key"`
	WeatherBaseURL          string `koanf:"weather_base_url"`
	WeatherCity             string `koanf:"weather_city"`
	WeatherTimeoutMS        int    `koanf:"weather_timeout_ms"`
	WeatherBreakerFailures  int    `koanf:"weather_breaker_failures"`
	WeatherBreakerTimeoutMS int    `koanf:"weather_breaker_timeout_ms"`

	// Static weather snapshot.
	StaticCondition string  `koanf:"static_condition"`
	StaticTemp      float64 `koanf:"static_temp"`
	StaticHumidity  int     `koanf:"static_humidity"`

	// Scoring weights.
	WeightFavoriteColor  float64 `koanf:"weight_favorite_color"`
	WeightPreferredStyle float64 `koanf:"weight_preferred_style"`
	WeightFavorite       float64 `koanf:"weight_favorite"`
	WeightWearPerUse     float64 `koanf:"weight_wear_per_use"`
	WeightWearCap        float64 `koanf:"weight_wear_cap"`
	WeightCoordination   float64 `koanf:"weight_coordination"`
}

// New creates a Config holding the defaults.
func New() *Config {
	w := scoring.DefaultWeights()
	return &Config{
		LogLevel:                "info",
		Addr:                    ":9080",
		CooldownHours:           24,
		ConfirmDedupeSize:       10_000,
		DefaultOccasion:         string(model.OccasionCasual),
		WeatherProvider:         WeatherProviderStatic,
		WeatherCity:             "New York",
		WeatherTimeoutMS:        5000,
		WeatherBreakerFailures:  3,
		WeatherBreakerTimeoutMS: 30_000,
		StaticCondition:         string(model.ConditionSunny),
		StaticTemp:              72,
		StaticHumidity:          45,
		WeightFavoriteColor:     w.FavoriteColor,
		WeightPreferredStyle:    w.PreferredStyle,
		WeightFavorite:          w.Favorite,
		WeightWearPerUse:        w.WearPenaltyPerUse,
		WeightWearCap:           w.WearPenaltyCap,
		WeightCoordination:      w.Coordination,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.CooldownHours <= 0:
		return fmt.Errorf("%w: cooldown_hours must be positive", ErrInvalidConfig)
	case c.WeatherProvider != WeatherProviderStatic && c.WeatherProvider != WeatherProviderOpenWeather:
		return fmt.Errorf("%w: unknown weather_provider %q", ErrInvalidConfig, c.WeatherProvider)
	case c.WeatherProvider == WeatherProviderOpenWeather && c.WeatherAPIKey == "":
		return fmt.Errorf("%w: weather_api_key is required for openweather", ErrInvalidConfig)
	case !model.Condition(c.StaticCondition).Known():
		return fmt.Errorf("%w: unknown static_condition %q", ErrInvalidConfig, c.StaticCondition)
	}
	return nil
}

// Cooldown returns the item rest period.
func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownHours) * time.Hour
}

// WeatherTimeout returns the upstream weather request timeout.
func (c *Config) WeatherTimeout() time.Duration {
	return time.Duration(c.WeatherTimeoutMS) * time.Millisecond
}

// WeatherBreakerTimeout returns how long the weather breaker stays open.
func (c *Config) WeatherBreakerTimeout() time.Duration {
	return time.Duration(c.WeatherBreakerTimeoutMS) * time.Millisecond
}

// StaticWeather returns the configured static snapshot.
func (c *Config) StaticWeather() model.WeatherSnapshot {
	return model.WeatherSnapshot{
		Condition:   model.Condition(c.StaticCondition),
		Temperature: c.StaticTemp,
		Humidity:    c.StaticHumidity,
		Location:    c.WeatherCity,
	}
}

// Weights returns the configured scoring weights.
func (c *Config) Weights() scoring.Weights {
	return scoring.Weights{
		FavoriteColor:     c.WeightFavoriteColor,
		PreferredStyle:    c.WeightPreferredStyle,
		Favorite:          c.WeightFavorite,
		WearPenaltyPerUse: c.WeightWearPerUse,
		WearPenaltyCap:    c.WeightWearCap,
		Coordination:      c.WeightCoordination,
	}
}
