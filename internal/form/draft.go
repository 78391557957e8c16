package form

// EmergencyContact is the nested contact block of the booking form.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// Draft is the in-progress booking form data, held client-side until it is
// validated and submitted. All numeric fields stay strings, exactly as the
// form inputs carry them.
type Draft struct {
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Destination      string           `json:"destination"`
	DepartureDate    string           `json:"departureDate"`
	ReturnDate       string           `json:"returnDate"`
	Adults           string           `json:"adults"`
	Children         string           `json:"children"`
	RoomType         string           `json:"roomType"`
	MealPreference   string           `json:"mealPreference"`
	SpecialRequests  string           `json:"specialRequests"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	StreetAddress    string           `json:"streetAddress"`
	City             string           `json:"city"`
	StateProvince    string           `json:"stateProvince"`
	PostalCode       string           `json:"postalCode"`
	Country          string           `json:"country"`
	TermsAccepted    bool             `json:"termsAccepted"`
}

// NewDraft returns the empty initial form shape.
func NewDraft() Draft {
	return Draft{
		Adults:         "1",
		Children:       "0",
		RoomType:       "standard",
		MealPreference: "vegetarian",
	}
}

// Errors maps a field path to its current validation message. A missing or
// empty entry means the field is valid.
type Errors map[string]string
