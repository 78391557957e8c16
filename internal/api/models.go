package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"raeesatours/internal/entities"
	httperrors "raeesatours/internal/errors"
	"raeesatours/internal/repository"
)

func respondJSON(w http.ResponseWriter, status int, resp entities.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// respondError maps service errors onto the envelope: HTTPError keeps its
// status and message, a repository miss becomes 404 with notFound, anything
// else is a 500 with the handler's fallback message.
func respondError(w http.ResponseWriter, err error, notFound, fallback string) {
	var httpErr *httperrors.HTTPError
	if errors.As(err, &httpErr) {
		respondJSON(w, httpErr.Code, entities.APIResponse{Success: false, Message: httpErr.Message})
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, entities.APIResponse{Success: false, Message: notFound})
		return
	}
	respondJSON(w, http.StatusInternalServerError, entities.APIResponse{
		Success: false,
		Message: fallback,
		Error:   err.Error(),
	})
}
