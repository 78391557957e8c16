package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeServer struct {
	*httptest.Server
	requests int
	status   int
	body     map[string]interface{}
}

func newFakeServer(status int, body map[string]interface{}) *fakeServer {
	fs := &fakeServer{status: status, body: body}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.requests++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fs.status)
		json.NewEncoder(w).Encode(fs.body)
	}))
	return fs
}

func submitterWithValidDraft(baseURL string) (*Controller, *Submitter) {
	ctrl := NewController()
	d := validDraft()
	ctrl.draft = d
	return ctrl, NewSubmitter(ctrl, baseURL, nil)
}

func TestSubmitInvalidDraftSkipsNetwork(t *testing.T) {
	server := newFakeServer(http.StatusCreated, map[string]interface{}{"success": true})
	defer server.Close()

	ctrl := NewController()
	s := NewSubmitter(ctrl, server.URL, nil)
	s.Submit(context.Background())

	if server.requests != 0 {
		t.Fatalf("invalid draft must not reach the network, got %d requests", server.requests)
	}
	if s.ErrorMessage() != "Please correct the errors in the form" {
		t.Errorf("got banner %q", s.ErrorMessage())
	}
	if s.State() != StateIdle {
		t.Errorf("state should return to Idle, got %v", s.State())
	}
	if len(ctrl.FieldErrors()) == 0 {
		t.Error("field errors should be populated")
	}
}

func TestSubmitWithoutTermsSkipsNetwork(t *testing.T) {
	server := newFakeServer(http.StatusCreated, map[string]interface{}{"success": true})
	defer server.Close()

	ctrl, s := submitterWithValidDraft(server.URL)
	ctrl.SetTermsAccepted(false)
	s.Submit(context.Background())

	if server.requests != 0 {
		t.Fatalf("terms gate must block the network call, got %d requests", server.requests)
	}
	if s.ErrorMessage() != "Please accept the terms and conditions" {
		t.Errorf("got banner %q", s.ErrorMessage())
	}
}

func TestSubmitSuccessResetsDraft(t *testing.T) {
	server := newFakeServer(http.StatusCreated, map[string]interface{}{"success": true})
	defer server.Close()

	ctrl, s := submitterWithValidDraft(server.URL)
	scrolled := false
	s.OnScrollTop(func() { scrolled = true })

	s.Submit(context.Background())

	if server.requests != 1 {
		t.Fatalf("expected one request, got %d", server.requests)
	}
	d := ctrl.Draft()
	if d.FirstName != "" || d.Adults != "1" || d.RoomType != "standard" || d.TermsAccepted {
		t.Fatalf("draft not reset after success: %+v", d)
	}
	if s.SuccessMessage() != "Thank you for your booking! We will contact you shortly." {
		t.Errorf("got success banner %q", s.SuccessMessage())
	}
	if s.ErrorMessage() != "" {
		t.Errorf("error banner should be empty, got %q", s.ErrorMessage())
	}
	if !scrolled {
		t.Error("scroll hook not fired")
	}
}

func TestSubmitSuccessUsesServerMessage(t *testing.T) {
	server := newFakeServer(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Booking confirmed, see you soon!",
	})
	defer server.Close()

	_, s := submitterWithValidDraft(server.URL)
	s.Submit(context.Background())

	if s.SuccessMessage() != "Booking confirmed, see you soon!" {
		t.Errorf("server message not used: %q", s.SuccessMessage())
	}
}

func TestSubmitServerRejectionPreservesDraft(t *testing.T) {
	server := newFakeServer(http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"message": "Please fill in all required fields",
	})
	defer server.Close()

	ctrl, s := submitterWithValidDraft(server.URL)
	before := ctrl.Draft()
	s.Submit(context.Background())

	if ctrl.Draft() != before {
		t.Fatal("draft must be preserved on rejection")
	}
	if s.ErrorMessage() != "Please fill in all required fields" {
		t.Errorf("got banner %q", s.ErrorMessage())
	}
	if s.SuccessMessage() != "" {
		t.Errorf("success banner should be empty, got %q", s.SuccessMessage())
	}
}

func TestSubmitTransportFailure(t *testing.T) {
	server := newFakeServer(http.StatusCreated, map[string]interface{}{"success": true})
	server.Close() // connection refused from here on

	ctrl, s := submitterWithValidDraft(server.URL)
	before := ctrl.Draft()
	s.Submit(context.Background())

	if ctrl.Draft() != before {
		t.Fatal("draft must be preserved on transport failure")
	}
	if s.ErrorMessage() != "Something went wrong. Please try again." {
		t.Errorf("got banner %q", s.ErrorMessage())
	}
}

func TestSubmitClearsPreviousBanners(t *testing.T) {
	server := newFakeServer(http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"message": "first failure",
	})
	defer server.Close()

	_, s := submitterWithValidDraft(server.URL)
	s.Submit(context.Background())
	if s.ErrorMessage() != "first failure" {
		t.Fatalf("setup failed: %q", s.ErrorMessage())
	}

	server.status = http.StatusCreated
	server.body = map[string]interface{}{"success": true}
	s.Submit(context.Background())

	if s.ErrorMessage() != "" {
		t.Errorf("old error banner survived: %q", s.ErrorMessage())
	}
	if s.SuccessMessage() == "" {
		t.Error("success banner missing after successful resubmit")
	}
}
