// Package repository holds the wardrobe and outfit history stores the
// recommendation service reads from and writes to.
package repository

import (
	"context"
	"time"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// WardrobeStore provides read/write access to the user's wardrobe.
type WardrobeStore interface {
	// Snapshot returns a copy of every item in insertion order. Callers may
	// keep and read the copy freely; later writes do not affect it.
	Snapshot(ctx context.Context) []model.WardrobeItem

	// Get returns the item with id, or ErrNotFound.
	Get(ctx context.Context, id string) (model.WardrobeItem, error)

	// Put inserts or replaces an item. It reports whether the item is new.
	Put(ctx context.Context, item model.WardrobeItem) (bool, error)

	// Delete removes an item, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// RecordWear increments the wear counter of every id and sets its last
	// worn time to at. Either all ids are updated or none is.
	RecordWear(ctx context.Context, ids []string, at time.Time) error

	// Count returns the number of items.
	Count(ctx context.Context) int
}

// OutfitStore keeps outfits the user confirmed as worn.
type OutfitStore interface {
	// Save appends an outfit to the history.
	Save(ctx context.Context, o model.Outfit) error

	// List returns up to limit outfits, newest first. A limit of zero
	// returns the whole history.
	List(ctx context.Context, limit int) ([]model.Outfit, error)
}
