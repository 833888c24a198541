package loadtest

import "errors"

// Sentinel errors.
var (
	ErrInvalidConfig      = errors.New("invalid load test config")
	ErrUnhealthy          = errors.New("service is not healthy")
	ErrUnexpectedStatus   = errors.New("unexpected status")
	ErrVerificationFailed = errors.New("verification failed")
)
