package api

import (
	"context"
	"net/http"
	"time"

	service "github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/app"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// RecommendDependencies defines the interface for recommendation operations.
type RecommendDependencies interface {
	Recommend(ctx context.Context, in service.RecommendInput) (service.RecommendResult, error)
}

// recommendationRequest mirrors the OpenAPI schema for POST /recommendations.
type recommendationRequest struct {
	Occasion    string              `json:"occasion" validate:"max=64"`
	Preferences *preferencesRequest `json:"preferences"`
	Weather     *weatherRequest     `json:"weather"`
}

type preferencesRequest struct {
	FavoriteColors  []string `json:"favorite_colors" validate:"max=32,dive,required,max=64"`
	PreferredStyles []string `json:"preferred_styles" validate:"max=4,dive,oneof=casual elegant professional sporty"`
}

type weatherRequest struct {
	Temperature *float64 `json:"temperature" validate:"required"`
	Condition   string   `json:"condition" validate:"required,oneof=sunny cloudy rainy windy snowy"`
	Humidity    int      `json:"humidity" validate:"min=0,max=100"`
	Description string   `json:"description" validate:"max=256"`
	Location    string   `json:"location" validate:"max=128"`
}

func (r recommendationRequest) input() service.RecommendInput {
	in := service.RecommendInput{Occasion: model.Occasion(r.Occasion)}
	if p := r.Preferences; p != nil {
		prefs := &model.Preferences{FavoriteColors: p.FavoriteColors}
		for _, s := range p.PreferredStyles {
			prefs.PreferredStyles = append(prefs.PreferredStyles, model.Style(s))
		}
		in.Preferences = prefs
	}
	if wr := r.Weather; wr != nil {
		in.Weather = &model.WeatherSnapshot{
			Temperature: *wr.Temperature,
			Condition:   model.Condition(wr.Condition),
			Humidity:    wr.Humidity,
			Description: wr.Description,
			Location:    wr.Location,
		}
		if in.Weather.Description == "" {
			in.Weather.Description = model.DescribeWeather(in.Weather.Condition, in.Weather.Temperature)
		}
	}
	return in
}

type recommendationResponse struct {
	ID         string                             `json:"id"`
	Items      map[model.Slot]*model.WardrobeItem `json:"items"`
	Confidence int                                `json:"confidence"`
	Reasoning  []string                           `json:"reasoning"`
	Occasion   string                             `json:"occasion"`
	Style      string                             `json:"style"`
	Branch     model.Branch                       `json:"branch"`
	Empty      bool                               `json:"empty"`
	Weather    model.WeatherSnapshot              `json:"weather"`
	Guidance   model.WeatherGuidance              `json:"guidance"`
	Scores     map[model.Slot]model.Breakdown     `json:"scores,omitempty"`
	CreatedAt  time.Time                          `json:"created_at"`
}

func newRecommendationResponse(res service.RecommendResult) recommendationResponse {
	rec := res.Recommendation
	reasoning := rec.Reasoning
	if reasoning == nil {
		reasoning = []string{}
	}
	return recommendationResponse{
		ID:         res.ID,
		Items:      itemsBySlot(rec),
		Confidence: rec.Confidence,
		Reasoning:  reasoning,
		Occasion:   rec.Occasion,
		Style:      rec.Style,
		Branch:     rec.Branch,
		Empty:      rec.Empty(),
		Weather:    res.Weather,
		Guidance:   rec.Guidance,
		Scores:     rec.Scores,
		CreatedAt:  res.CreatedAt,
	}
}

// RecommendationsHandler handles recommendation requests.
type RecommendationsHandler struct {
	deps RecommendDependencies
}

// NewRecommendationsHandler creates a new recommendations handler.
func NewRecommendationsHandler(deps RecommendDependencies) *RecommendationsHandler {
	return &RecommendationsHandler{deps: deps}
}

// HandlePostRecommendation handles POST /recommendations requests. A wardrobe
// with nothing available still answers 200 with empty set.
func (h *RecommendationsHandler) HandlePostRecommendation(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_recommendation"
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	var req recommendationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, WrapKind(op, ErrBadRequest, err))
		return
	}

	res, err := h.deps.Recommend(r.Context(), req.input())
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, newRecommendationResponse(res))
}
