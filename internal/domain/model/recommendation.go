package model

import "time"

// Slot is a named position in an outfit.
type Slot string

// Outfit slots.
const (
	SlotDress     Slot = "dress"
	SlotTop       Slot = "top"
	SlotBottom    Slot = "bottom"
	SlotShoes     Slot = "shoes"
	SlotAccessory Slot = "accessory"
	SlotPerfume   Slot = "perfume"
)

// Slots lists every slot in selection order.
func Slots() []Slot {
	return []Slot{SlotDress, SlotTop, SlotBottom, SlotShoes, SlotAccessory, SlotPerfume}
}

// SlotFor returns the slot filled by items of category c.
func SlotFor(c Category) (Slot, bool) {
	switch c {
	case CategoryDress:
		return SlotDress, true
	case CategoryTop:
		return SlotTop, true
	case CategoryBottom:
		return SlotBottom, true
	case CategoryShoes:
		return SlotShoes, true
	case CategoryAccessory:
		return SlotAccessory, true
	case CategoryPerfume:
		return SlotPerfume, true
	}
	return "", false
}

// Branch is the top-level outfit shape chosen by the assembler.
type Branch string

// Branches.
const (
	BranchDress     Branch = "dress"
	BranchSeparates Branch = "separates"
)

// BranchSlots lists the slots a branch tries to fill, in selection order.
func BranchSlots(b Branch) []Slot {
	if b == BranchDress {
		return []Slot{SlotDress, SlotShoes, SlotAccessory, SlotPerfume}
	}
	return []Slot{SlotTop, SlotBottom, SlotShoes, SlotAccessory, SlotPerfume}
}

// Recommendation is the engine output. Items point into the wardrobe slice
// the caller passed in; they are never copied or mutated.
type Recommendation struct {
	Items      map[Slot]*WardrobeItem
	Confidence int
	Reasoning  []string
	Occasion   string
	Style      string
	Branch     Branch
	Guidance   WeatherGuidance

	// Scores holds the breakdown of every filled slot's winning score.
	Scores map[Slot]Breakdown
}

// Filled returns the filled items in selection order.
func (r Recommendation) Filled() []*WardrobeItem {
	out := make([]*WardrobeItem, 0, len(r.Items))
	for _, s := range Slots() {
		if it := r.Items[s]; it != nil {
			out = append(out, it)
		}
	}
	return out
}

// Empty reports whether no slot was filled.
func (r Recommendation) Empty() bool {
	return len(r.Filled()) == 0
}

// Outfit is a recommendation the user confirmed and the history store kept.
// Items reference wardrobe items by id.
type Outfit struct {
	ID               string          `json:"id"`
	RecommendationID string          `json:"recommendation_id"`
	Name             string          `json:"name,omitempty"`
	Date             time.Time       `json:"date"`
	Occasion         Occasion        `json:"occasion"`
	Items            map[Slot]string `json:"items"`
	Confidence       int             `json:"confidence"`
	Style            string          `json:"style"`
}
