package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	service "github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/app"
	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// OutfitDependencies defines the interface for outfit history operations.
type OutfitDependencies interface {
	ConfirmOutfit(ctx context.Context, in service.ConfirmInput) (model.Outfit, error)
	Outfits(ctx context.Context, limit int) ([]model.Outfit, error)
}

// outfitRequest mirrors the OpenAPI schema for POST /outfits.
type outfitRequest struct {
	RecommendationID string `json:"recommendation_id" validate:"required,max=64"`
	Name             string `json:"name" validate:"max=128"`
	Date             string `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (r outfitRequest) input() (service.ConfirmInput, error) {
	in := service.ConfirmInput{RecommendationID: r.RecommendationID, Name: r.Name}
	if r.Date != "" {
		d, err := time.Parse(time.RFC3339, r.Date)
		if err != nil {
			return service.ConfirmInput{}, errors.New("date must be an RFC3339 timestamp")
		}
		in.Date = d
	}
	return in, nil
}

// OutfitsHandler handles outfit history requests.
type OutfitsHandler struct {
	deps     OutfitDependencies
	maxLimit int
}

// NewOutfitsHandler creates a new outfits handler. A non-positive maxLimit
// leaves list sizes unbounded.
func NewOutfitsHandler(deps OutfitDependencies, maxLimit int) *OutfitsHandler {
	return &OutfitsHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleOutfits dispatches /outfits by method.
func (h *OutfitsHandler) HandleOutfits(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.HandlePostOutfit(w, r)
	case http.MethodGet:
		h.HandleGetOutfits(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

// HandlePostOutfit handles POST /outfits requests.
func (h *OutfitsHandler) HandlePostOutfit(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_outfit"
	var req outfitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, WrapKind(op, ErrBadRequest, err))
		return
	}

	o, err := h.deps.ConfirmOutfit(r.Context(), in)
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

// HandleGetOutfits handles GET /outfits?limit=N requests. Without a limit
// every kept outfit is returned, newest first.
func (h *OutfitsHandler) HandleGetOutfits(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_outfits"
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, WrapKind(op, ErrBadRequest, errors.New("limit must be a positive integer")))
			return
		}
		limit = n
	}
	if h.maxLimit > 0 && (limit == 0 || limit > h.maxLimit) {
		limit = h.maxLimit
	}

	outfits, err := h.deps.Outfits(r.Context(), limit)
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	if outfits == nil {
		outfits = []model.Outfit{}
	}
	writeJSON(w, http.StatusOK, outfits)
}
