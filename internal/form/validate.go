package form

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"raeesatours/internal/utils"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\+?[\d\s-]+$`)
)

// validPhone accepts an optional leading +, digits, spaces and hyphens, with
// at least 10 digits overall.
func validPhone(phone string) bool {
	return phoneRegex.MatchString(phone) && utils.CountDigits(phone) >= 10
}

// Validate checks the whole draft and returns every field error plus an
// overall pass/fail. It never mutates the draft; calling it twice on the
// same draft yields identical results.
func Validate(d Draft) (Errors, bool) {
	errors := Errors{}

	if strings.TrimSpace(d.FirstName) == "" {
		errors[FieldFirstName] = "First name is required"
	} else if utf8.RuneCountInString(strings.TrimSpace(d.FirstName)) < 2 {
		errors[FieldFirstName] = "First name must be at least 2 characters"
	}

	if strings.TrimSpace(d.LastName) == "" {
		errors[FieldLastName] = "Last name is required"
	} else if utf8.RuneCountInString(strings.TrimSpace(d.LastName)) < 2 {
		errors[FieldLastName] = "Last name must be at least 2 characters"
	}

	if strings.TrimSpace(d.Email) == "" {
		errors[FieldEmail] = "Email is required"
	} else if !emailRegex.MatchString(d.Email) {
		errors[FieldEmail] = "Please enter a valid email address"
	}

	if strings.TrimSpace(d.Phone) == "" {
		errors[FieldPhone] = "Phone number is required"
	} else if !validPhone(d.Phone) {
		errors[FieldPhone] = "Please enter a valid phone number"
	}

	if d.Destination == "" {
		errors[FieldDestination] = "Please select a destination"
	}

	if msg := ValidateDate(d.DepartureDate, Departure, ""); msg != "" {
		errors[FieldDepartureDate] = msg
	}
	if msg := ValidateDate(d.ReturnDate, Return, d.DepartureDate); msg != "" {
		errors[FieldReturnDate] = msg
	}

	if adults, err := strconv.Atoi(d.Adults); err != nil || adults < 1 {
		errors[FieldAdults] = "At least 1 adult is required"
	}
	if d.Children != "" {
		if children, err := strconv.Atoi(d.Children); err != nil || children < 0 {
			errors[FieldChildren] = "Children cannot be negative"
		}
	}

	if strings.TrimSpace(d.EmergencyContact.Name) == "" {
		errors[FieldEmergencyContactName] = "Emergency contact name is required"
	}
	if strings.TrimSpace(d.EmergencyContact.Phone) == "" {
		errors[FieldEmergencyContactPhone] = "Emergency contact phone is required"
	} else if !validPhone(d.EmergencyContact.Phone) {
		errors[FieldEmergencyContactPhone] = "Please enter a valid phone number"
	}
	if strings.TrimSpace(d.EmergencyContact.Relation) == "" {
		errors[FieldEmergencyContactRelation] = "Relation is required"
	}

	if strings.TrimSpace(d.StreetAddress) == "" {
		errors[FieldStreetAddress] = "Street address is required"
	}
	if strings.TrimSpace(d.City) == "" {
		errors[FieldCity] = "City is required"
	}
	if strings.TrimSpace(d.StateProvince) == "" {
		errors[FieldStateProvince] = "State/Province is required"
	}
	if strings.TrimSpace(d.PostalCode) == "" {
		errors[FieldPostalCode] = "Postal code is required"
	}
	if strings.TrimSpace(d.Country) == "" {
		errors[FieldCountry] = "Country is required"
	}

	return errors, len(errors) == 0
}

// ValidateField re-checks a single field against the current draft. It
// agrees with Validate for that field given the same values.
func ValidateField(d Draft, path string) string {
	errors, _ := Validate(d)
	return errors[path]
}
