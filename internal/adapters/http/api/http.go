// Package api serves the closet recommendation service over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	service "github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/app"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	RecommendDependencies
	OutfitDependencies
	WardrobeDependencies
	WeatherDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler          *HealthHandler
	statsHandler           *StatsHandler
	recommendationsHandler *RecommendationsHandler
	outfitsHandler         *OutfitsHandler
	wardrobeHandler        *WardrobeHandler
	weatherHandler         *WeatherHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxOutfits int) *Server {
	return &Server{
		healthHandler:          NewHealthHandler(),
		statsHandler:           NewStatsHandler(statsProvider),
		recommendationsHandler: NewRecommendationsHandler(deps),
		outfitsHandler:         NewOutfitsHandler(deps, maxOutfits),
		wardrobeHandler:        NewWardrobeHandler(deps),
		weatherHandler:         NewWeatherHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/recommendations", MetricsMiddleware(s.recommendationsHandler.HandlePostRecommendation, "recommendations"))
	mux.HandleFunc("/outfits", MetricsMiddleware(s.outfitsHandler.HandleOutfits, "outfits"))
	mux.HandleFunc("/wardrobe", MetricsMiddleware(s.wardrobeHandler.HandleWardrobe, "wardrobe"))
	mux.HandleFunc("/wardrobe/", MetricsMiddleware(s.wardrobeHandler.HandleDeleteItem, "wardrobe_item"))
	mux.HandleFunc("/weather", MetricsMiddleware(s.weatherHandler.HandleGetWeather, "weather"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError responds with the status of err's kind.
func writeError(w http.ResponseWriter, err error) {
	status, code := statusOf(Kind(err))
	writeJSON(w, status, errorResponse{Code: code, Message: err.Error()})
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
		Code:    "method_not_allowed",
		Message: http.StatusText(http.StatusMethodNotAllowed),
	})
}

// decodeJSON reads one JSON document into v and validates it. Unknown fields
// are rejected.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("malformed json: %w", err)
	}
	return validateStruct(v)
}

// Compile-time check that the service satisfies the handler contracts.
var _ Dependencies = (*service.Service)(nil)

// itemsBySlot drops unfilled slots.
func itemsBySlot(rec model.Recommendation) map[model.Slot]*model.WardrobeItem {
	out := make(map[model.Slot]*model.WardrobeItem, len(rec.Items))
	for slot, it := range rec.Items {
		if it != nil {
			out[slot] = it
		}
	}
	return out
}
