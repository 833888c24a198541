package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrNotFound     = errors.New("wardrobe item not found")
	ErrInvalidItem  = errors.New("invalid wardrobe item")
	ErrDuplicateID  = errors.New("duplicate wardrobe item id")
	ErrInvalidLimit = errors.New("invalid history limit")
)
