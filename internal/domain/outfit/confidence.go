package outfit

import "github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"

// Confidence tuning constants.
const (
	perSlotConfidence  = 15
	maxBaseConfidence  = 75
	cohesionBonus      = 15
	maxCohesiveStyles  = 2
	warmSunnyBonus     = 10
	warmSunnyThreshold = 70
	maxConfidence      = 98
)

// Confidence scores how much the engine trusts an outfit, in [0, 98].
// An outfit with no filled slots always scores 0.
func Confidence(items []*model.WardrobeItem, w model.WeatherSnapshot) int {
	if len(items) == 0 {
		return 0
	}

	confidence := min(len(items)*perSlotConfidence, maxBaseConfidence)

	styles := make(map[model.Style]struct{}, len(items))
	for _, it := range items {
		styles[it.Style] = struct{}{}
	}
	if len(styles) <= maxCohesiveStyles {
		confidence += cohesionBonus
	}

	if w.Condition == model.ConditionSunny && w.Temperature > warmSunnyThreshold {
		confidence += warmSunnyBonus
	}

	return min(confidence, maxConfidence)
}
