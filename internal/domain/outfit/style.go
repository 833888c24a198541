package outfit

import "github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"

const (
	defaultStyleLabel = "Casual"
	mixedStyleLabel   = "Mixed Style"
)

var styleLabels = map[model.Style]string{
	model.StyleCasual:       "Casual Chic",
	model.StyleElegant:      "Elegant Style",
	model.StyleProfessional: "Professional Look",
	model.StyleSporty:       "Sporty Casual",
}

// ClassifyStyle labels an outfit by its most frequent style tag. Ties go to
// the tag seen first in items.
func ClassifyStyle(items []*model.WardrobeItem) string {
	if len(items) == 0 {
		return defaultStyleLabel
	}

	counts := make(map[model.Style]int, len(items))
	order := make([]model.Style, 0, len(items))
	for _, it := range items {
		if _, seen := counts[it.Style]; !seen {
			order = append(order, it.Style)
		}
		counts[it.Style]++
	}

	dominant := order[0]
	for _, s := range order[1:] {
		if counts[s] > counts[dominant] {
			dominant = s
		}
	}

	if label, ok := styleLabels[dominant]; ok {
		return label
	}
	return mixedStyleLabel
}
