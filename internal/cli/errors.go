package cli

import "errors"

// Sentinel errors for command failures.
var (
	ErrNoWardrobe  = errors.New("no wardrobe file: pass --wardrobe or set wardrobe_file")
	ErrInvalidFlag = errors.New("invalid flag value")
)
