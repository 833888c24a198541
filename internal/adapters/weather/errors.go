package weather

import "errors"

// Sentinel kinds for weather errors.
var (
	ErrUpstream         = errors.New("weather upstream failure")
	ErrUnavailable      = errors.New("weather provider unavailable")
	ErrNoProviders      = errors.New("no weather providers configured")
	ErrMissingAPIKey    = errors.New("weather api key is required")
	ErrUnknownCondition = errors.New("unknown weather condition")
)
