package handler

import (
	"net/http"
	"strings"

	"kosmos/internal/model"
	"kosmos/internal/store"
	"kosmos/pkg/apierror"
)

type NavigationHandler struct {
	workspace *store.WorkspaceStore
}

func NewNavigationHandler(workspace *store.WorkspaceStore) *NavigationHandler {
	return &NavigationHandler{workspace: workspace}
}

// Get returns the current navigation snapshot.
func (h *NavigationHandler) Get(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.workspace.Snapshot(), nil)
}

type setFolderRequest struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// SetFolder points navigation at a folder and marks the listing as loading.
func (h *NavigationHandler) SetFolder(w http.ResponseWriter, r *http.Request) {
	var req setFolderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		writeError(w, apierror.New("BAD_REQUEST", "path is required", "", http.StatusBadRequest))
		return
	}

	h.workspace.SetFolder(req.Path, req.Name)
	writeSuccess(w, http.StatusOK, h.workspace.Snapshot(), nil)
}

type setFilesRequest struct {
	Files []model.DirEntry `json:"files"`
}

// SetFiles delivers the listing for the current folder.
func (h *NavigationHandler) SetFiles(w http.ResponseWriter, r *http.Request) {
	var req setFilesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	h.workspace.SetFiles(req.Files)
	writeSuccess(w, http.StatusOK, h.workspace.Snapshot(), nil)
}

type setLoadingRequest struct {
	Loading bool `json:"loading"`
}

// SetLoading overrides the loading flag.
func (h *NavigationHandler) SetLoading(w http.ResponseWriter, r *http.Request) {
	var req setLoadingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	h.workspace.SetLoading(req.Loading)
	writeSuccess(w, http.StatusOK, h.workspace.Snapshot(), nil)
}

// Clear resets navigation to its initial state.
func (h *NavigationHandler) Clear(w http.ResponseWriter, _ *http.Request) {
	h.workspace.Clear()
	writeSuccess(w, http.StatusOK, nil, nil)
}
