package form

import "strings"

// Controller is the single source of truth for the booking draft and its
// per-field error state. It performs no network I/O; submission is the
// Submitter's job.
type Controller struct {
	draft  Draft
	errors Errors
}

func NewController() *Controller {
	return &Controller{
		draft:  NewDraft(),
		errors: Errors{},
	}
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft {
	return c.draft
}

// FieldError returns the current message for one field path, "" when valid.
func (c *Controller) FieldError(path string) string {
	return c.errors[path]
}

// FieldErrors returns a copy of the full error map.
func (c *Controller) FieldErrors() Errors {
	out := Errors{}
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// SetField updates one field by path and clears its existing error. Date
// fields are formatted as typed and validated immediately; changing the
// departure date re-validates an already entered return date against it.
// One level of dotted nesting is supported for the emergency contact.
func (c *Controller) SetField(path, value string) {
	delete(c.errors, path)

	switch {
	case path == FieldDepartureDate || path == FieldReturnDate:
		c.setDateField(path, value)
	case strings.Contains(path, "."):
		c.setNestedField(path, value)
	default:
		c.setFlatField(path, value)
	}
}

// SetTermsAccepted flips the consent checkbox.
func (c *Controller) SetTermsAccepted(accepted bool) {
	c.draft.TermsAccepted = accepted
}

// Reset restores the empty initial draft and clears all field errors.
func (c *Controller) Reset() {
	c.draft = NewDraft()
	c.errors = Errors{}
}

func (c *Controller) setDateField(path, value string) {
	formatted := FormatDateInput(value)

	if path == FieldDepartureDate {
		c.draft.DepartureDate = formatted
		c.setError(FieldDepartureDate, ValidateDate(formatted, Departure, ""))
		// A changed departure date invalidates the return-after-departure
		// check, so the return date is re-judged against the new value.
		if c.draft.ReturnDate != "" {
			c.setError(FieldReturnDate, ValidateDate(c.draft.ReturnDate, Return, formatted))
		}
		return
	}

	c.draft.ReturnDate = formatted
	c.setError(FieldReturnDate, ValidateDate(formatted, Return, c.draft.DepartureDate))
}

func (c *Controller) setNestedField(path, value string) {
	switch path {
	case FieldEmergencyContactName:
		c.draft.EmergencyContact.Name = value
	case FieldEmergencyContactPhone:
		c.draft.EmergencyContact.Phone = value
	case FieldEmergencyContactRelation:
		c.draft.EmergencyContact.Relation = value
	}
}

func (c *Controller) setFlatField(path, value string) {
	switch path {
	case FieldFirstName:
		c.draft.FirstName = value
	case FieldLastName:
		c.draft.LastName = value
	case FieldEmail:
		c.draft.Email = value
	case FieldPhone:
		c.draft.Phone = value
	case FieldDestination:
		c.draft.Destination = value
	case FieldAdults:
		c.draft.Adults = value
	case FieldChildren:
		c.draft.Children = value
	case FieldRoomType:
		c.draft.RoomType = value
	case FieldMealPreference:
		c.draft.MealPreference = value
	case FieldSpecialRequests:
		c.draft.SpecialRequests = value
	case FieldStreetAddress:
		c.draft.StreetAddress = value
	case FieldCity:
		c.draft.City = value
	case FieldStateProvince:
		c.draft.StateProvince = value
	case FieldPostalCode:
		c.draft.PostalCode = value
	case FieldCountry:
		c.draft.Country = value
	}
}

func (c *Controller) setError(path, message string) {
	if message == "" {
		delete(c.errors, path)
		return
	}
	c.errors[path] = message
}

func (c *Controller) setErrors(errors Errors) {
	c.errors = errors
}
