package api

import (
	"context"
	"net/http"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// WeatherDependencies defines the interface for weather lookups.
type WeatherDependencies interface {
	Weather(ctx context.Context) (model.WeatherSnapshot, model.WeatherGuidance, error)
}

type weatherResponse struct {
	Weather  model.WeatherSnapshot `json:"weather"`
	Guidance model.WeatherGuidance `json:"guidance"`
}

// WeatherHandler handles weather requests.
type WeatherHandler struct {
	deps WeatherDependencies
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(deps WeatherDependencies) *WeatherHandler {
	return &WeatherHandler{deps: deps}
}

// HandleGetWeather handles GET /weather requests.
func (h *WeatherHandler) HandleGetWeather(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_weather"
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	snap, guidance, err := h.deps.Weather(r.Context())
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, weatherResponse{Weather: snap, Guidance: guidance})
}
