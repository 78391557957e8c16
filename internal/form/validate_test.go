package form

import (
	"reflect"
	"testing"
	"time"
)

func validDraft() Draft {
	d := NewDraft()
	d.FirstName = "Al"
	d.LastName = "Lee"
	d.Email = "a@b.com"
	d.Phone = "+91 7006276358"
	d.Destination = "Gulmarg"
	d.DepartureDate = ddmmyyyy(time.Now().AddDate(0, 0, 1))
	d.ReturnDate = ddmmyyyy(time.Now().AddDate(0, 0, 3))
	d.Adults = "2"
	d.StreetAddress = "12 Boulevard"
	d.City = "Srinagar"
	d.StateProvince = "J&K"
	d.PostalCode = "190001"
	d.Country = "India"
	d.EmergencyContact = EmergencyContact{
		Name:     "Sam Lee",
		Phone:    "+91 7006276359",
		Relation: "Sibling",
	}
	d.TermsAccepted = true
	return d
}

func TestValidateEmptyDraft(t *testing.T) {
	errors, ok := Validate(Draft{})
	if ok {
		t.Fatal("empty draft should not validate")
	}

	required := map[string]string{
		FieldFirstName:                "First name is required",
		FieldLastName:                 "Last name is required",
		FieldEmail:                    "Email is required",
		FieldPhone:                    "Phone number is required",
		FieldDestination:              "Please select a destination",
		FieldDepartureDate:            "Departure date is required",
		FieldReturnDate:               "Return date is required",
		FieldEmergencyContactName:     "Emergency contact name is required",
		FieldEmergencyContactPhone:    "Emergency contact phone is required",
		FieldEmergencyContactRelation: "Relation is required",
		FieldStreetAddress:            "Street address is required",
		FieldCity:                     "City is required",
		FieldStateProvince:            "State/Province is required",
		FieldPostalCode:               "Postal code is required",
		FieldCountry:                  "Country is required",
	}
	for path, want := range required {
		if got := errors[path]; got != want {
			t.Errorf("errors[%q] = %q, want %q", path, got, want)
		}
	}
}

func TestValidateFullDraft(t *testing.T) {
	errors, ok := Validate(validDraft())
	if !ok {
		t.Fatalf("valid draft rejected, errors: %v", errors)
	}
	if len(errors) != 0 {
		t.Fatalf("expected empty error map, got %v", errors)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	d := Draft{FirstName: "A"}
	first, firstOK := Validate(d)
	second, secondOK := Validate(d)
	if firstOK != secondOK || !reflect.DeepEqual(first, second) {
		t.Fatalf("validation not idempotent: %v vs %v", first, second)
	}
}

func TestValidateNameLength(t *testing.T) {
	d := validDraft()
	d.FirstName = "A"
	errors, ok := Validate(d)
	if ok {
		t.Fatal("one-letter first name should fail")
	}
	if errors[FieldFirstName] != "First name must be at least 2 characters" {
		t.Errorf("got %q", errors[FieldFirstName])
	}
}

func TestValidateEmailFormat(t *testing.T) {
	d := validDraft()
	for _, email := range []string{"plainaddress", "no@tld", "a b@c.com", "a@b c.com"} {
		d.Email = email
		if errors, ok := Validate(d); ok || errors[FieldEmail] != "Please enter a valid email address" {
			t.Errorf("email %q: got %q", email, errors[FieldEmail])
		}
	}
}

func TestValidatePhoneDigits(t *testing.T) {
	d := validDraft()

	// Nine digits spread over separators is not enough.
	d.Phone = "+12 345 678 9"
	if errors, ok := Validate(d); ok || errors[FieldPhone] != "Please enter a valid phone number" {
		t.Errorf("short phone: got %q", errors[FieldPhone])
	}

	// Ten digits with separators is fine.
	d.Phone = "070-062-763-5"
	if errors, ok := Validate(d); !ok {
		t.Errorf("ten-digit phone rejected: %q", errors[FieldPhone])
	}

	// Letters are never allowed.
	d.Phone = "12345abcde67890"
	if errors, ok := Validate(d); ok || errors[FieldPhone] != "Please enter a valid phone number" {
		t.Errorf("lettered phone: got %q", errors[FieldPhone])
	}
}

func TestValidateAdults(t *testing.T) {
	d := validDraft()
	for _, adults := range []string{"0", "-1", "", "two"} {
		d.Adults = adults
		if errors, ok := Validate(d); ok || errors[FieldAdults] != "At least 1 adult is required" {
			t.Errorf("adults %q: got %q", adults, errors[FieldAdults])
		}
	}
}

func TestValidateReturnBeforeDeparture(t *testing.T) {
	d := validDraft()
	d.DepartureDate = ddmmyyyy(time.Now().AddDate(0, 0, 5))
	d.ReturnDate = ddmmyyyy(time.Now().AddDate(0, 0, 2))
	errors, ok := Validate(d)
	if ok {
		t.Fatal("return before departure should fail")
	}
	if errors[FieldReturnDate] != "Return date must be after departure date" {
		t.Errorf("got %q", errors[FieldReturnDate])
	}
}

func TestValidateFieldAgreesWithValidate(t *testing.T) {
	d := validDraft()
	d.Email = "broken"
	full, _ := Validate(d)
	if got := ValidateField(d, FieldEmail); got != full[FieldEmail] {
		t.Errorf("single-field validation disagrees: %q vs %q", got, full[FieldEmail])
	}
	if got := ValidateField(d, FieldFirstName); got != "" {
		t.Errorf("valid field should have no error, got %q", got)
	}
}
