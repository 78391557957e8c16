package entities

// ContactRequest is the JSON body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

// ContactUpdateRequest is the JSON body of PATCH /api/contact/{id}.
type ContactUpdateRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}
