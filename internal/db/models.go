package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmergencyContact is embedded in a registration document.
type EmergencyContact struct {
	Name     string `bson:"name" json:"name"`
	Phone    string `bson:"phone" json:"phone"`
	Relation string `bson:"relation" json:"relation"`
}

// Registration is a confirmed booking submission. Immutable once created
// except for deletion by an admin.
type Registration struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName        string             `bson:"firstName" json:"firstName"`
	LastName         string             `bson:"lastName" json:"lastName"`
	Email            string             `bson:"email" json:"email"`
	Phone            string             `bson:"phone" json:"phone"`
	Destination      string             `bson:"destination" json:"destination"`
	DepartureDate    string             `bson:"departureDate" json:"departureDate"`
	ReturnDate       string             `bson:"returnDate" json:"returnDate"`
	Adults           string             `bson:"adults" json:"adults"`
	Children         string             `bson:"children" json:"children"`
	RoomType         string             `bson:"roomType" json:"roomType"`
	MealPreference   string             `bson:"mealPreference" json:"mealPreference"`
	SpecialRequests  string             `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	EmergencyContact EmergencyContact   `bson:"emergencyContact" json:"emergencyContact"`
	StreetAddress    string             `bson:"streetAddress" json:"streetAddress"`
	City             string             `bson:"city" json:"city"`
	StateProvince    string             `bson:"stateProvince" json:"stateProvince"`
	PostalCode       string             `bson:"postalCode" json:"postalCode"`
	Country          string             `bson:"country" json:"country"`
	TermsAccepted    bool               `bson:"termsAccepted" json:"termsAccepted"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ContactMessage is a contact-form submission. Status and admin notes are
// mutated from the dashboard.
type ContactMessage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Subject    string             `bson:"subject" json:"subject"`
	Message    string             `bson:"message" json:"message"`
	Status     string             `bson:"status" json:"status"`
	AdminNotes string             `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// Admin is a dashboard login.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
