package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"kosmos/internal/model"
	"kosmos/pkg/apierror"
)

func writeSuccess(w http.ResponseWriter, status int, data any, meta *model.Meta) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	} else if errors.Is(err, model.ErrLayoutNotFound) {
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Layout not found"
	} else if errors.Is(err, model.ErrInvalidInput) {
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "Invalid input"
	} else {
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error:   body,
	})
}

// decodeBody parses a JSON request body into dst, rejecting unknown junk
// with a 400.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierror.New("BAD_REQUEST", "malformed JSON body", err.Error(), http.StatusBadRequest)
	}
	return nil
}
