package entities

// ContactEmailData feeds the contact-form notification templates.
type ContactEmailData struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	SubmittedAt string
}

// BookingEmailData feeds the booking-received confirmation.
type BookingEmailData struct {
	FirstName     string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        string
	Children      string
	RoomType      string
	CurrentYear   int
}
