// Package availability decides which wardrobe items may be recommended today.
package availability

import (
	"time"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// DefaultCooldown is the minimum gap between wearing an item and having it
// recommended again.
const DefaultCooldown = 24 * time.Hour

// Filter returns the items that may be recommended as of asOf, preserving
// their order. The result holds pointers into items.
//
// Items never worn are always eligible. Otherwise the elapsed time is
// floor-divided into whole cooldown periods in milliseconds and the item is
// eligible once at least one full period has passed. A non-positive cooldown
// falls back to DefaultCooldown; one shorter than a millisecond counts as one.
func Filter(items []model.WardrobeItem, asOf time.Time, cooldown time.Duration) []*model.WardrobeItem {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	periodMS := max(cooldown.Milliseconds(), 1)

	out := make([]*model.WardrobeItem, 0, len(items))
	for i := range items {
		it := &items[i]
		if it.LastWorn != nil {
			elapsedMS := asOf.Sub(*it.LastWorn).Milliseconds()
			if floorDiv(elapsedMS, periodMS) < 1 {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// Pools groups eligible items by category, keeping their relative order.
func Pools(eligible []*model.WardrobeItem) map[model.Category][]*model.WardrobeItem {
	pools := make(map[model.Category][]*model.WardrobeItem)
	for _, it := range eligible {
		pools[it.Category] = append(pools[it.Category], it)
	}
	return pools
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
