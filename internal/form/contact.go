package form

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// ContactDraft is the in-progress contact form.
type ContactDraft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ValidateContact checks the contact draft; same contract as Validate.
func ValidateContact(d ContactDraft) (Errors, bool) {
	errors := Errors{}

	if strings.TrimSpace(d.Name) == "" {
		errors["name"] = "Name is required"
	}
	if strings.TrimSpace(d.Email) == "" {
		errors["email"] = "Email is required"
	} else if !emailRegex.MatchString(d.Email) {
		errors["email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(d.Subject) == "" {
		errors["subject"] = "Subject is required"
	}
	if strings.TrimSpace(d.Message) == "" {
		errors["message"] = "Message is required"
	} else if len(strings.TrimSpace(d.Message)) < 10 {
		errors["message"] = "Message must be at least 10 characters long"
	}

	return errors, len(errors) == 0
}

// ContactForm is the contact-page counterpart of Controller+Submitter, small
// enough to live in one type.
type ContactForm struct {
	draft   ContactDraft
	errors  Errors
	client  *http.Client
	baseURL string
	state   SubmitState

	successMessage string
	errorMessage   string
}

func NewContactForm(baseURL string, client *http.Client) *ContactForm {
	if client == nil {
		client = http.DefaultClient
	}
	return &ContactForm{
		errors:  Errors{},
		client:  client,
		baseURL: baseURL,
		state:   StateIdle,
	}
}

func (f *ContactForm) Draft() ContactDraft    { return f.draft }
func (f *ContactForm) FieldErrors() Errors    { return f.errors }
func (f *ContactForm) State() SubmitState     { return f.state }
func (f *ContactForm) SuccessMessage() string { return f.successMessage }
func (f *ContactForm) ErrorMessage() string   { return f.errorMessage }

func (f *ContactForm) SetField(path, value string) {
	delete(f.errors, path)
	switch path {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "subject":
		f.draft.Subject = value
	case "message":
		f.draft.Message = value
	}
}

func (f *ContactForm) Reset() {
	f.draft = ContactDraft{}
	f.errors = Errors{}
	f.successMessage = ""
	f.errorMessage = ""
	f.state = StateIdle
}

// Submit validates and posts the contact draft, with the same banner and
// reset semantics as the booking pipeline.
func (f *ContactForm) Submit(ctx context.Context) {
	if f.state == StateSubmitting {
		return
	}

	f.successMessage = ""
	f.errorMessage = ""

	f.state = StateValidating
	errors, ok := ValidateContact(f.draft)
	f.errors = errors
	if !ok {
		f.state = StateIdle
		f.errorMessage = correctErrorsMessage
		return
	}

	f.state = StateSubmitting
	defer func() { f.state = StateIdle }()

	payload, err := json.Marshal(f.draft)
	if err != nil {
		f.errorMessage = defaultErrorMessage
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/api/contact", bytes.NewReader(payload))
	if err != nil {
		f.errorMessage = defaultErrorMessage
		return
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := f.client.Do(req)
	if err != nil {
		f.errorMessage = defaultErrorMessage
		return
	}
	defer httpResp.Body.Close()

	var body submitResponse
	decodeErr := json.NewDecoder(httpResp.Body).Decode(&body)

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 && decodeErr == nil && body.Success {
		f.draft = ContactDraft{}
		f.errors = Errors{}
		f.successMessage = body.Message
		if f.successMessage == "" {
			f.successMessage = "Thank you for your message. We will get back to you soon!"
		}
		return
	}

	f.errorMessage = body.Message
	if f.errorMessage == "" {
		f.errorMessage = defaultErrorMessage
	}
}
