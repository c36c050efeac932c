package handler

import (
	"net/http"

	"kosmos/internal/layout"
	"kosmos/internal/store"
	"kosmos/pkg/apierror"
)

type LayoutHandler struct {
	layouts *store.LayoutStore
}

func NewLayoutHandler(layouts *store.LayoutStore) *LayoutHandler {
	return &LayoutHandler{layouts: layouts}
}

// Catalog lists the predefined layouts.
func (h *LayoutHandler) Catalog(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, layout.Catalog(), nil)
}

// Get returns the active layout including runtime visibility edits.
func (h *LayoutHandler) Get(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.layouts.Current(), nil)
}

type setLayoutRequest struct {
	ID layout.ID `json:"id"`
}

// Set activates a catalog layout, discarding prior visibility edits.
func (h *LayoutHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setLayoutRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.layouts.SetLayout(req.ID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, h.layouts.Current(), nil)
}

type panelVisibilityRequest struct {
	PanelID layout.PanelID `json:"panel_id"`
	Visible bool           `json:"visible"`
}

// PatchPanel toggles visibility of one panel in the active layout. An
// unknown panel id leaves the layout unchanged and still succeeds.
func (h *LayoutHandler) PatchPanel(w http.ResponseWriter, r *http.Request) {
	var req panelVisibilityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.PanelID == "" {
		writeError(w, apierror.New("BAD_REQUEST", "panel_id is required", "", http.StatusBadRequest))
		return
	}

	h.layouts.SetPanelVisibility(req.PanelID, req.Visible)
	writeSuccess(w, http.StatusOK, h.layouts.Current(), nil)
}
