package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted             = errors.New("service not started")
	ErrInvalidRequest         = errors.New("invalid recommendation request")
	ErrInvalidItem            = errors.New("invalid wardrobe item")
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrAlreadyConfirmed       = errors.New("recommendation already confirmed")
	ErrWeatherUnavailable     = errors.New("weather unavailable")
)
