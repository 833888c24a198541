package config

import "errors"

var (
	// ErrInvalidConfig wraps every Validate failure, such as an unknown
	// weather provider or a non-positive cooldown.
	ErrInvalidConfig = errors.New("invalid closet muse config")
	// ErrLoadConfig wraps failures reading the config file or environment.
	ErrLoadConfig = errors.New("load closet muse config")
)
