package service

import (
	"fmt"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/adapters/weather"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/config"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/logger"
)

// NewWeatherProvider builds the configured weather source. The openweather
// provider is chained in front of the static snapshot so a failing upstream
// degrades to the configured fallback weather.
func NewWeatherProvider(cfg *config.Config, log logger.Logger) (weather.Provider, error) {
	if log == nil {
		log = logger.Nop()
	}
	static := weather.NewStatic(cfg.StaticWeather())

	switch cfg.WeatherProvider {
	case config.WeatherProviderStatic:
		return static, nil
	case config.WeatherProviderOpenWeather:
		ow, err := weather.NewOpenWeather(cfg.WeatherAPIKey,
			weather.WithBaseURL(cfg.WeatherBaseURL),
			weather.WithCity(cfg.WeatherCity),
			weather.WithTimeout(cfg.WeatherTimeout()),
			weather.WithBreaker(cfg.WeatherBreakerFailures, cfg.WeatherBreakerTimeout()),
			weather.WithLogger(log.Named("openweather")),
		)
		if err != nil {
			return nil, fmt.Errorf("openweather: %w", err)
		}
		return weather.NewChain(log.Named("weather"), ow, static), nil
	}
	return nil, fmt.Errorf("%w: unknown weather_provider %q", config.ErrInvalidConfig, cfg.WeatherProvider)
}

// OptionsFromConfig maps the tunables of cfg onto service options.
func OptionsFromConfig(cfg *config.Config) []Option {
	return []Option{
		WithWeights(cfg.Weights()),
		WithCooldown(cfg.Cooldown()),
		WithDedupeSize(cfg.ConfirmDedupeSize),
		WithDefaultOccasion(model.Occasion(cfg.DefaultOccasion)),
	}
}
