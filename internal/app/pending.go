package service

import (
	"sync"
	"time"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// pendingRecommendation is what a later confirmation needs to know about a
// recommendation.
type pendingRecommendation struct {
	Items      map[model.Slot]string
	Occasion   model.Occasion
	Confidence int
	Style      string
	CreatedAt  time.Time
}

// pendingSet remembers the most recent recommendations, forgetting the
// oldest once maxSize is reached.
type pendingSet struct {
	mu      sync.Mutex
	byID    map[string]pendingRecommendation
	order   []string
	maxSize int
}

func newPendingSet(maxSize int) *pendingSet {
	return &pendingSet{
		byID:    make(map[string]pendingRecommendation),
		maxSize: maxSize,
	}
}

func (p *pendingSet) put(id string, r pendingRecommendation) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.byID[id]; !ok {
		p.order = append(p.order, id)
	}
	p.byID[id] = r
	for p.maxSize > 0 && len(p.order) > p.maxSize {
		delete(p.byID, p.order[0])
		p.order = p.order[1:]
	}
}

func (p *pendingSet) get(id string) (pendingRecommendation, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, ok := p.byID[id]
	return r, ok
}

func (p *pendingSet) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.byID)
}
