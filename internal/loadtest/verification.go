package loadtest

import (
	"fmt"
	"slices"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

const maxConfidence = 98

var styleLabels = []string{
	"Casual Chic", "Elegant Style", "Professional Look", "Sporty Casual", "Mixed Style", "Casual",
}

// checkRecommendation returns every invariant rec breaks.
func checkRecommendation(rec recommendation) []string {
	var out []string
	fail := func(format string, args ...any) {
		out = append(out, fmt.Sprintf("recommendation %s: ", rec.ID)+fmt.Sprintf(format, args...))
	}

	filled := 0
	for slot, it := range rec.Items {
		if it == nil {
			continue
		}
		filled++
		if want, ok := model.SlotFor(it.Category); !ok || want != slot {
			fail("%s item %s has category %s", slot, it.ID, it.Category)
		}
	}

	switch {
	case rec.ID == "":
		fail("missing id")
	case rec.Confidence < 0 || rec.Confidence > maxConfidence:
		fail("confidence %d out of range", rec.Confidence)
	case rec.Empty != (filled == 0):
		fail("empty=%t with %d filled slots", rec.Empty, filled)
	case rec.Empty && rec.Confidence != 0:
		fail("empty outfit has confidence %d", rec.Confidence)
	case len(rec.Reasoning) != filled:
		fail("%d reasoning lines for %d filled slots", len(rec.Reasoning), filled)
	case !slices.Contains(styleLabels, rec.Style):
		fail("unknown style label %q", rec.Style)
	}

	allowed := model.BranchSlots(rec.Branch)
	for slot, it := range rec.Items {
		if it != nil && !slices.Contains(allowed, slot) {
			fail("slot %s filled on the %s branch", slot, rec.Branch)
		}
	}
	return out
}

// checkOutfits verifies the newest outfits all came from this run.
func checkOutfits(listed []model.Outfit, confirmed map[string]bool) []string {
	var out []string
	for _, o := range listed {
		if !confirmed[o.RecommendationID] {
			out = append(out, fmt.Sprintf("outfit %s references recommendation %s this run did not confirm", o.ID, o.RecommendationID))
		}
		if len(o.Items) == 0 {
			out = append(out, fmt.Sprintf("outfit %s has no items", o.ID))
		}
	}
	return out
}
