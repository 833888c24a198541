package outfit

import "errors"

// Sentinel errors for malformed engine requests.
var (
	ErrMissingWardrobe = errors.New("wardrobe is required")
	ErrMissingWeather  = errors.New("weather snapshot is required")
	ErrInvalidWeather  = errors.New("weather temperature is not a finite number")
	ErrMissingAsOf     = errors.New("as-of instant is required")
)
