package api

import (
	"encoding/json"
	"net/http"

	"raeesatours/internal/entities"
	"raeesatours/internal/service"
)

type AdminAuthHandler struct {
	service service.AdminAuthService
}

func NewAdminAuthHandler(svc service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{service: svc}
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req entities.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, entities.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, entities.APIResponse{Success: false, Message: "Invalid credentials"})
		return
	}

	respondJSON(w, http.StatusOK, entities.APIResponse{Success: true, Data: entities.LoginResponse{Token: token}})
}

// CreateAdmin seeds a dashboard login. Exposed behind the admin middleware so
// only an existing admin can add another.
func (h *AdminAuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req entities.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, entities.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if err := h.service.CreateAdmin(r.Context(), req.Email, req.Password); err != nil {
		respondJSON(w, http.StatusInternalServerError, entities.APIResponse{Success: false, Message: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, entities.APIResponse{Success: true, Message: "Admin registered successfully"})
}
