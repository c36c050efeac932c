package handler

import (
	"net/http"

	"kosmos/internal/model"
	"kosmos/internal/store"
	"kosmos/pkg/apierror"
)

type ThemeHandler struct {
	theme *store.ThemeStore
}

func NewThemeHandler(theme *store.ThemeStore) *ThemeHandler {
	return &ThemeHandler{theme: theme}
}

type themeData struct {
	Theme model.Theme `json:"theme"`
}

func (h *ThemeHandler) Get(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, themeData{Theme: h.theme.Theme()}, nil)
}

func (h *ThemeHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req themeData
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	theme, ok := model.ParseTheme(string(req.Theme))
	if !ok {
		writeError(w, apierror.New("BAD_REQUEST", "theme must be \"light\" or \"dark\"", "", http.StatusBadRequest))
		return
	}

	h.theme.Set(theme)
	writeSuccess(w, http.StatusOK, themeData{Theme: theme}, nil)
}

func (h *ThemeHandler) Toggle(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, themeData{Theme: h.theme.Toggle()}, nil)
}
