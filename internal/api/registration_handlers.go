package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"raeesatours/internal/db"
	"raeesatours/internal/entities"
	"raeesatours/internal/service"

	"github.com/gorilla/mux"
)

type RegistrationHandler struct {
	Service *service.RegistrationService
}

func NewRegistrationHandler(svc *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{Service: svc}
}

func (h *RegistrationHandler) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	var req entities.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, entities.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	registration, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Registration not found", "Error creating registration")
		return
	}

	respondJSON(w, http.StatusCreated, entities.APIResponse{Success: true, Data: registration})
}

// ListRegistrations serves the admin dashboard: ?page=N plus optional
// destination substring and departure date range filters.
func (h *RegistrationHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	query := entities.RegistrationListQuery{
		Page:        1,
		Destination: r.URL.Query().Get("destination"),
		StartDate:   r.URL.Query().Get("startDate"),
		EndDate:     r.URL.Query().Get("endDate"),
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		query.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		query.Limit = limit
	}

	registrations, pagination, err := h.Service.List(r.Context(), query)
	if err != nil {
		respondError(w, err, "Registrations not found", "Error fetching registrations")
		return
	}

	// An out-of-range page is an empty list, not an error.
	if registrations == nil {
		registrations = []db.Registration{}
	}

	respondJSON(w, http.StatusOK, entities.APIResponse{
		Success:    true,
		Data:       registrations,
		Pagination: pagination,
	})
}

func (h *RegistrationHandler) GetRegistration(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	registration, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Registration not found", "Error fetching registration")
		return
	}

	respondJSON(w, http.StatusOK, entities.APIResponse{Success: true, Data: registration})
}

func (h *RegistrationHandler) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteByID(r.Context(), id); err != nil {
		respondError(w, err, "Registration not found", "Error deleting registration")
		return
	}

	respondJSON(w, http.StatusOK, entities.APIResponse{Success: true, Message: "Registration deleted successfully"})
}
