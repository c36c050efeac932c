package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"kosmos/internal/model"
	"kosmos/internal/store"
)

type HistoryHandler struct {
	history *store.HistoryStore
}

func NewHistoryHandler(history *store.HistoryStore) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List returns the ledger newest-first, paginated.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	entries := h.history.Entries()
	total := len(entries)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	meta := model.Meta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
	writeSuccess(w, http.StatusOK, entries[start:end], &meta)
}

// Add appends one entry to the ledger. The entry's status field is the
// caller's judgment of the run; it is stored as given.
func (h *HistoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var entry model.HistoryEntry
	if err := decodeBody(r, &entry); err != nil {
		writeError(w, err)
		return
	}

	stored := h.history.Add(entry)
	writeSuccess(w, http.StatusCreated, stored, nil)
}

// Remove drops one entry by id. Removing an absent id still succeeds.
func (h *HistoryHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.history.Remove(chi.URLParam(r, "id"))
	writeSuccess(w, http.StatusOK, nil, nil)
}

// Clear empties the ledger.
func (h *HistoryHandler) Clear(w http.ResponseWriter, _ *http.Request) {
	h.history.Clear()
	writeSuccess(w, http.StatusOK, nil, nil)
}
