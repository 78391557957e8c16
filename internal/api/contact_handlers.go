package api

import (
	"encoding/json"
	"net/http"

	"raeesatours/internal/db"
	"raeesatours/internal/entities"
	"raeesatours/internal/service"

	"github.com/gorilla/mux"
)

type ContactHandler struct {
	Service *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req entities.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, entities.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	message, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Contact message not found", "Error sending message")
		return
	}

	respondJSON(w, http.StatusCreated, entities.APIResponse{
		Success: true,
		Message: "Thank you for your message. We will get back to you soon!",
		Data:    message,
	})
}

func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, err, "Contact messages not found", "Error fetching contact messages")
		return
	}
	if messages == nil {
		messages = []db.ContactMessage{}
	}

	respondJSON(w, http.StatusOK, entities.APIResponse{Success: true, Data: messages})
}

// UpdateContact handles PATCH {status, adminNotes} from the dashboard.
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req entities.ContactUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, entities.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	message, err := h.Service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		respondError(w, err, "Contact message not found", "Error updating contact message")
		return
	}

	respondJSON(w, http.StatusOK, entities.APIResponse{Success: true, Data: message})
}

func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteByID(r.Context(), id); err != nil {
		respondError(w, err, "Contact message not found", "Error deleting contact message")
		return
	}

	respondJSON(w, http.StatusOK, entities.APIResponse{Success: true, Message: "Contact message deleted successfully"})
}
