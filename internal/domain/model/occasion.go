package model

// Occasion is the event the outfit is meant for. Unrecognized values are
// valid and score neutrally.
type Occasion string

// Known occasions.
const (
	OccasionCasual Occasion = "casual"
	OccasionWork   Occasion = "work"
	OccasionDate   Occasion = "date"
	OccasionParty  Occasion = "party"
	OccasionFormal Occasion = "formal"
)

// Occasions lists every known occasion.
func Occasions() []Occasion {
	return []Occasion{OccasionCasual, OccasionWork, OccasionDate, OccasionParty, OccasionFormal}
}

// Known reports whether o is one of the known occasions.
func (o Occasion) Known() bool {
	switch o {
	case OccasionCasual, OccasionWork, OccasionDate, OccasionParty, OccasionFormal:
		return true
	}
	return false
}

// Label returns the display label of the occasion.
func (o Occasion) Label() string {
	switch o {
	case OccasionWork:
		return "Work Meeting"
	case OccasionCasual:
		return "Casual Outing"
	case OccasionDate:
		return "Date Night"
	case OccasionParty:
		return "Party Time"
	case OccasionFormal:
		return "Formal Event"
	}
	return "Daily Wear"
}
