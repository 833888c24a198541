package repository

import (
	"context"
	"sync"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// DefaultMaxOutfits bounds the history when no option is given.
const DefaultMaxOutfits = 1000

// MemoryHistory is an in-memory OutfitStore.
type MemoryHistory struct {
	mu         sync.RWMutex
	outfits    []model.Outfit
	maxOutfits int
}

// NewMemoryHistory creates an outfit history with configuration options.
func NewMemoryHistory(opts ...HistoryOption) *MemoryHistory {
	h := &MemoryHistory{maxOutfits: DefaultMaxOutfits}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Save implements OutfitStore.
func (h *MemoryHistory) Save(_ context.Context, o model.Outfit) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.outfits = append(h.outfits, cloneOutfit(o))
	if h.maxOutfits > 0 && len(h.outfits) > h.maxOutfits {
		h.outfits = h.outfits[len(h.outfits)-h.maxOutfits:]
	}
	return nil
}

// List implements OutfitStore.
func (h *MemoryHistory) List(_ context.Context, limit int) ([]model.Outfit, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	n := len(h.outfits)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.Outfit, 0, n)
	for i := len(h.outfits) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, cloneOutfit(h.outfits[i]))
	}
	return out, nil
}

func cloneOutfit(o model.Outfit) model.Outfit {
	items := make(map[model.Slot]string, len(o.Items))
	for k, v := range o.Items {
		items[k] = v
	}
	o.Items = items
	return o
}
