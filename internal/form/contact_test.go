package form

import (
	"context"
	"net/http"
	"testing"
)

func TestValidateContactEmptyDraft(t *testing.T) {
	errors, ok := ValidateContact(ContactDraft{})
	if ok {
		t.Fatal("empty contact draft should not validate")
	}
	want := map[string]string{
		"name":    "Name is required",
		"email":   "Email is required",
		"subject": "Subject is required",
		"message": "Message is required",
	}
	for path, msg := range want {
		if errors[path] != msg {
			t.Errorf("errors[%q] = %q, want %q", path, errors[path], msg)
		}
	}
}

func TestValidateContactShortMessage(t *testing.T) {
	d := ContactDraft{
		Name:    "Aadil",
		Email:   "a@b.com",
		Subject: "Trip query",
		Message: "Too short",
	}
	errors, ok := ValidateContact(d)
	if ok {
		t.Fatal("nine-character message should fail")
	}
	if errors["message"] != "Message must be at least 10 characters long" {
		t.Errorf("got %q", errors["message"])
	}

	d.Message = "This is long enough."
	if errors, ok := ValidateContact(d); !ok {
		t.Fatalf("valid contact draft rejected: %v", errors)
	}
}

func TestContactFormSubmit(t *testing.T) {
	server := newFakeServer(http.StatusCreated, map[string]interface{}{"success": true})
	defer server.Close()

	f := NewContactForm(server.URL, nil)
	f.SetField("name", "Aadil")
	f.SetField("email", "a@b.com")
	f.SetField("subject", "Trip query")
	f.SetField("message", "Do you run winter tours to Gulmarg?")

	f.Submit(context.Background())

	if server.requests != 1 {
		t.Fatalf("expected one request, got %d", server.requests)
	}
	if f.Draft() != (ContactDraft{}) {
		t.Fatalf("draft not reset after success: %+v", f.Draft())
	}
	if f.SuccessMessage() == "" || f.ErrorMessage() != "" {
		t.Fatalf("banner state wrong: success=%q error=%q", f.SuccessMessage(), f.ErrorMessage())
	}
}

func TestContactFormSubmitInvalidSkipsNetwork(t *testing.T) {
	server := newFakeServer(http.StatusCreated, map[string]interface{}{"success": true})
	defer server.Close()

	f := NewContactForm(server.URL, nil)
	f.Submit(context.Background())

	if server.requests != 0 {
		t.Fatalf("invalid contact draft must not reach the network, got %d requests", server.requests)
	}
}
