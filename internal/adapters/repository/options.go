package repository

import "github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"

// Option applies a configuration option to the MemoryWardrobe.
type Option func(*MemoryWardrobe)

// WithItems seeds the store. Items without an id are skipped; a later item
// replaces an earlier one with the same id.
func WithItems(items []model.WardrobeItem) Option {
	return func(s *MemoryWardrobe) {
		for _, it := range items {
			if it.ID == "" {
				continue
			}
			s.upsert(it)
		}
	}
}

// HistoryOption applies a configuration option to the MemoryHistory.
type HistoryOption func(*MemoryHistory)

// WithMaxOutfits bounds the history. Once full the oldest outfit is dropped.
// Zero or a negative value keeps every outfit.
func WithMaxOutfits(n int) HistoryOption {
	return func(h *MemoryHistory) {
		h.maxOutfits = n
	}
}
