package outfit

import (
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/scoring"
)

// SelectBest returns the highest scoring item of pool with its breakdown.
// Exact ties go to the item that comes first in pool. An empty pool yields
// a nil item.
func SelectBest(pool []*model.WardrobeItem, s scoring.Scorer, c scoring.Context) (*model.WardrobeItem, model.Breakdown) {
	var (
		best      *model.WardrobeItem
		bestScore model.Breakdown
	)
	for _, it := range pool {
		b := s.Score(it, c)
		if best == nil || b.Total() > bestScore.Total() {
			best, bestScore = it, b
		}
	}
	return best, bestScore
}
