package form

// Field paths used as keys in the error map. Nested fields use dotted paths
// so an error can be looked up by the exact path of the input that caused it.
const (
	FieldFirstName                = "firstName"
	FieldLastName                 = "lastName"
	FieldEmail                    = "email"
	FieldPhone                    = "phone"
	FieldDestination              = "destination"
	FieldDepartureDate            = "departureDate"
	FieldReturnDate               = "returnDate"
	FieldAdults                   = "adults"
	FieldChildren                 = "children"
	FieldRoomType                 = "roomType"
	FieldMealPreference           = "mealPreference"
	FieldSpecialRequests          = "specialRequests"
	FieldEmergencyContactName     = "emergencyContact.name"
	FieldEmergencyContactPhone    = "emergencyContact.phone"
	FieldEmergencyContactRelation = "emergencyContact.relation"
	FieldStreetAddress            = "streetAddress"
	FieldCity                     = "city"
	FieldStateProvince            = "stateProvince"
	FieldPostalCode               = "postalCode"
	FieldCountry                  = "country"
)
