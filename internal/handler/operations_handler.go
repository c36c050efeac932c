package handler

import (
	"net/http"

	"kosmos/internal/model"
	"kosmos/internal/store"
	"kosmos/pkg/apierror"
)

type OperationsHandler struct {
	operations *store.OperationStore
}

func NewOperationsHandler(operations *store.OperationStore) *OperationsHandler {
	return &OperationsHandler{operations: operations}
}

// List returns this session's outcomes, newest first.
func (h *OperationsHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.operations.Results(), nil)
}

// AddResult records the outcome of a finished organize run. Partial
// failure is accepted as data; only internally inconsistent counts are
// rejected.
func (h *OperationsHandler) AddResult(w http.ResponseWriter, r *http.Request) {
	var result model.OperationResult
	if err := decodeBody(r, &result); err != nil {
		writeError(w, err)
		return
	}
	if !result.CountsConsistent() {
		writeError(w, apierror.New("BAD_REQUEST", "operation counts do not add up", "operations", http.StatusBadRequest))
		return
	}

	h.operations.AddResult(result)
	writeSuccess(w, http.StatusCreated, nil, nil)
}

// Clear drops all outcomes and any progress snapshot.
func (h *OperationsHandler) Clear(w http.ResponseWriter, _ *http.Request) {
	h.operations.Clear()
	writeSuccess(w, http.StatusOK, nil, nil)
}

// GetProgress returns the latest progress snapshot; data is null when no
// run has reported yet.
func (h *OperationsHandler) GetProgress(w http.ResponseWriter, _ *http.Request) {
	progress, ok := h.operations.Progress()
	if !ok {
		writeSuccess(w, http.StatusOK, nil, nil)
		return
	}
	writeSuccess(w, http.StatusOK, progress, nil)
}

// PutProgress records a progress snapshot from the running executor.
func (h *OperationsHandler) PutProgress(w http.ResponseWriter, r *http.Request) {
	var progress model.OperationProgress
	if err := decodeBody(r, &progress); err != nil {
		writeError(w, err)
		return
	}

	h.operations.SetProgress(progress)
	writeSuccess(w, http.StatusOK, nil, nil)
}
