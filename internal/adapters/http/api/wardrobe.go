package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// WardrobeDependencies defines the interface for wardrobe operations.
type WardrobeDependencies interface {
	Wardrobe(ctx context.Context) ([]model.WardrobeItem, error)
	PutItem(ctx context.Context, it model.WardrobeItem) (model.WardrobeItem, bool, error)
	DeleteItem(ctx context.Context, id string) error
}

// itemRequest mirrors the OpenAPI schema for PUT /wardrobe.
type itemRequest struct {
	ID        string     `json:"id" validate:"max=64"`
	Name      string     `json:"name" validate:"required,max=128"`
	Category  string     `json:"category" validate:"required,oneof=top bottom dress shoes accessory perfume"`
	Color     string     `json:"color" validate:"max=64"`
	Brand     string     `json:"brand" validate:"max=64"`
	Style     string     `json:"style" validate:"required,oneof=casual elegant professional sporty"`
	Favorite  bool       `json:"favorite"`
	TimesWorn int        `json:"times_worn" validate:"min=0"`
	LastWorn  *time.Time `json:"last_worn"`
	Notes     string     `json:"notes" validate:"max=1024"`
}

func (r itemRequest) item() model.WardrobeItem {
	return model.WardrobeItem{
		ID:        r.ID,
		Name:      r.Name,
		Category:  model.Category(r.Category),
		Color:     r.Color,
		Brand:     r.Brand,
		Style:     model.Style(r.Style),
		Favorite:  r.Favorite,
		TimesWorn: r.TimesWorn,
		LastWorn:  r.LastWorn,
		Notes:     r.Notes,
	}
}

// WardrobeHandler handles wardrobe requests.
type WardrobeHandler struct {
	deps WardrobeDependencies
}

// NewWardrobeHandler creates a new wardrobe handler.
func NewWardrobeHandler(deps WardrobeDependencies) *WardrobeHandler {
	return &WardrobeHandler{deps: deps}
}

// HandleWardrobe dispatches /wardrobe by method.
func (h *WardrobeHandler) HandleWardrobe(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.HandleGetWardrobe(w, r)
	case http.MethodPut:
		h.HandlePutItem(w, r)
	default:
		methodNotAllowed(w, "GET, PUT")
	}
}

// HandleGetWardrobe handles GET /wardrobe requests.
func (h *WardrobeHandler) HandleGetWardrobe(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_wardrobe"
	items, err := h.deps.Wardrobe(r.Context())
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	if items == nil {
		items = []model.WardrobeItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// HandlePutItem handles PUT /wardrobe requests. New items answer 201,
// replacements 200.
func (h *WardrobeHandler) HandlePutItem(w http.ResponseWriter, r *http.Request) {
	const op = "api.put_item"
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, WrapKind(op, ErrBadRequest, err))
		return
	}

	it, created, err := h.deps.PutItem(r.Context(), req.item())
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, it)
}

// HandleDeleteItem handles DELETE /wardrobe/{id} requests.
func (h *WardrobeHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "api.delete_item"
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, http.MethodDelete)
		return
	}
	// Extract path parameter after /wardrobe/
	id := strings.TrimPrefix(r.URL.Path, "/wardrobe/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, NewKind(op, ErrBadRequest))
		return
	}
	if err := h.deps.DeleteItem(r.Context(), id); err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
