package entities

// EmergencyContactRequest mirrors the nested emergencyContact object of the
// booking form.
type EmergencyContactRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Relation string `json:"relation" validate:"required"`
}

// RegistrationRequest is the JSON body of POST /api/registrations. The
// validate tags cover the same required set the API has always enforced;
// any missing field collapses into a single "fill in all required fields"
// rejection rather than per-field messages (those live client-side).
type RegistrationRequest struct {
	FirstName        string                  `json:"firstName" validate:"required"`
	LastName         string                  `json:"lastName" validate:"required"`
	Email            string                  `json:"email" validate:"required"`
	Phone            string                  `json:"phone" validate:"required"`
	Destination      string                  `json:"destination" validate:"required"`
	DepartureDate    string                  `json:"departureDate" validate:"required"`
	ReturnDate       string                  `json:"returnDate" validate:"required"`
	Adults           string                  `json:"adults" validate:"required"`
	Children         string                  `json:"children"`
	RoomType         string                  `json:"roomType"`
	MealPreference   string                  `json:"mealPreference"`
	SpecialRequests  string                  `json:"specialRequests"`
	EmergencyContact EmergencyContactRequest `json:"emergencyContact"`
	StreetAddress    string                  `json:"streetAddress" validate:"required"`
	City             string                  `json:"city" validate:"required"`
	StateProvince    string                  `json:"stateProvince" validate:"required"`
	PostalCode       string                  `json:"postalCode" validate:"required"`
	Country          string                  `json:"country" validate:"required"`
	TermsAccepted    bool                    `json:"termsAccepted"`
}

// RegistrationListQuery carries the admin listing filters.
type RegistrationListQuery struct {
	Page        int
	Limit       int
	Destination string
	StartDate   string
	EndDate     string
}
