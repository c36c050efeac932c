package handler

import (
	"net/http"
	"strings"

	"kosmos/internal/store"
	"kosmos/pkg/apierror"
)

type FoldersHandler struct {
	folders *store.FolderStore
}

func NewFoldersHandler(folders *store.FolderStore) *FoldersHandler {
	return &FoldersHandler{folders: folders}
}

// List returns the whole access ledger in insertion order.
func (h *FoldersHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.folders.All(), nil)
}

type trackAccessRequest struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// TrackAccess records one access to a folder.
func (h *FoldersHandler) TrackAccess(w http.ResponseWriter, r *http.Request) {
	var req trackAccessRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		writeError(w, apierror.New("BAD_REQUEST", "path is required", "", http.StatusBadRequest))
		return
	}

	h.folders.TrackAccess(req.Path, req.Name)
	writeSuccess(w, http.StatusOK, h.folders.All(), nil)
}

// Favorites returns folders accessed at least twice, most-used first.
func (h *FoldersHandler) Favorites(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.folders.Favorites(), nil)
}

// Clear empties the ledger.
func (h *FoldersHandler) Clear(w http.ResponseWriter, _ *http.Request) {
	h.folders.Clear()
	writeSuccess(w, http.StatusOK, nil, nil)
}
