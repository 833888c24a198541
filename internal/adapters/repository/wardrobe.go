package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/pkg/metrics"
)

// MemoryWardrobe is an in-memory WardrobeStore.
//
// Writes take the mutex and publish an immutable snapshot; reads load the
// published snapshot without locking.
type MemoryWardrobe struct {
	mu    sync.Mutex
	items []model.WardrobeItem
	index map[string]int

	snapshot atomic.Pointer[[]model.WardrobeItem]
}

// NewMemoryWardrobe creates a wardrobe store with configuration options.
func NewMemoryWardrobe(opts ...Option) *MemoryWardrobe {
	s := &MemoryWardrobe{index: make(map[string]int)}
	for _, opt := range opts {
		opt(s)
	}
	s.publish()
	return s
}

// Snapshot implements WardrobeStore.
func (s *MemoryWardrobe) Snapshot(_ context.Context) []model.WardrobeItem {
	start := time.Now()
	defer recordQueryLatency(start)

	return cloneItems(*s.snapshot.Load())
}

// Get implements WardrobeStore.
func (s *MemoryWardrobe) Get(_ context.Context, id string) (model.WardrobeItem, error) {
	start := time.Now()
	defer recordQueryLatency(start)

	for _, it := range *s.snapshot.Load() {
		if it.ID == id {
			return cloneItem(it), nil
		}
	}
	metrics.RecordErrorByComponent("repository", "not_found")
	return model.WardrobeItem{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Put implements WardrobeStore.
func (s *MemoryWardrobe) Put(_ context.Context, item model.WardrobeItem) (bool, error) {
	if item.ID == "" || item.Name == "" {
		metrics.RecordErrorByComponent("repository", "invalid_item")
		return false, fmt.Errorf("%w: id and name are required", ErrInvalidItem)
	}

	start := time.Now()
	defer recordUpdateLatency(start)

	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.upsert(cloneItem(item))
	s.publish()
	return created, nil
}

// Delete implements WardrobeStore.
func (s *MemoryWardrobe) Delete(_ context.Context, id string) error {
	start := time.Now()
	defer recordUpdateLatency(start)

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
	s.publish()
	return nil
}

// RecordWear implements WardrobeStore.
func (s *MemoryWardrobe) RecordWear(_ context.Context, ids []string, at time.Time) error {
	start := time.Now()
	defer recordUpdateLatency(start)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if _, ok := s.index[id]; !ok {
			metrics.RecordErrorByComponent("repository", "not_found")
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
	}
	for _, id := range ids {
		it := &s.items[s.index[id]]
		worn := at
		it.TimesWorn++
		it.LastWorn = &worn
	}
	s.publish()
	return nil
}

// Count implements WardrobeStore.
func (s *MemoryWardrobe) Count(_ context.Context) int {
	return len(*s.snapshot.Load())
}

// upsert must be called with s.mu held or before the store is shared.
func (s *MemoryWardrobe) upsert(it model.WardrobeItem) bool {
	if i, ok := s.index[it.ID]; ok {
		s.items[i] = it
		return false
	}
	s.index[it.ID] = len(s.items)
	s.items = append(s.items, it)
	return true
}

// publish must be called with s.mu held or before the store is shared.
func (s *MemoryWardrobe) publish() {
	snap := cloneItems(s.items)
	s.snapshot.Store(&snap)
	metrics.UpdateWardrobeItems(len(snap))
}

func cloneItems(src []model.WardrobeItem) []model.WardrobeItem {
	out := make([]model.WardrobeItem, len(src))
	for i, it := range src {
		out[i] = cloneItem(it)
	}
	return out
}

func cloneItem(it model.WardrobeItem) model.WardrobeItem {
	if it.LastWorn != nil {
		t := *it.LastWorn
		it.LastWorn = &t
	}
	return it
}

func recordQueryLatency(start time.Time) {
	metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Microseconds()) / 1000)
}

func recordUpdateLatency(start time.Time) {
	metrics.RecordRepositoryUpdateLatency(float64(time.Since(start).Microseconds()) / 1000)
}
