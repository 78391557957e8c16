package form

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// SubmitState tracks where the submission pipeline currently is. A form is
// only ever in one state; repeated submits while Submitting are ignored.
type SubmitState int

const (
	StateIdle SubmitState = iota
	StateValidating
	StateSubmitting
)

const (
	defaultSuccessMessage = "Thank you for your booking! We will contact you shortly."
	defaultErrorMessage   = "Something went wrong. Please try again."
	correctErrorsMessage  = "Please correct the errors in the form"
	acceptTermsMessage    = "Please accept the terms and conditions"
)

// submitResponse is the server envelope the pipeline cares about.
type submitResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Submitter orchestrates validate → send → interpret for a booking form.
// One terminal banner (success or error) is visible at a time; both are
// cleared when a new submission starts.
type Submitter struct {
	ctrl    *Controller
	client  *http.Client
	baseURL string
	state   SubmitState

	successMessage string
	errorMessage   string

	// onScrollTop, when set, is fired after a terminal banner is shown so
	// the view can surface it.
	onScrollTop func()
}

func NewSubmitter(ctrl *Controller, baseURL string, client *http.Client) *Submitter {
	if client == nil {
		client = http.DefaultClient
	}
	return &Submitter{
		ctrl:    ctrl,
		client:  client,
		baseURL: baseURL,
		state:   StateIdle,
	}
}

// OnScrollTop registers the banner-surfacing hook.
func (s *Submitter) OnScrollTop(fn func()) {
	s.onScrollTop = fn
}

func (s *Submitter) State() SubmitState     { return s.state }
func (s *Submitter) SuccessMessage() string { return s.successMessage }
func (s *Submitter) ErrorMessage() string   { return s.errorMessage }

// Reset clears the draft, field errors and both banners.
func (s *Submitter) Reset() {
	s.ctrl.Reset()
	s.successMessage = ""
	s.errorMessage = ""
	s.state = StateIdle
}

// Submit runs the full pipeline. No network call is made unless the draft
// validates and terms are accepted. On success the draft resets to its
// initial shape; on any failure it is preserved so the user can correct and
// resubmit.
func (s *Submitter) Submit(ctx context.Context) {
	if s.state == StateSubmitting {
		return
	}

	s.successMessage = ""
	s.errorMessage = ""

	s.state = StateValidating
	draft := s.ctrl.Draft()
	errors, ok := Validate(draft)
	s.ctrl.setErrors(errors)

	if !ok {
		s.state = StateIdle
		s.errorMessage = correctErrorsMessage
		return
	}
	if !draft.TermsAccepted {
		s.state = StateIdle
		s.errorMessage = acceptTermsMessage
		return
	}

	s.state = StateSubmitting
	defer func() { s.state = StateIdle }()

	resp, err := s.post(ctx, draft)
	if err != nil {
		s.errorMessage = defaultErrorMessage
		s.scrollTop()
		return
	}

	if resp.ok && resp.body.Success {
		s.ctrl.Reset()
		s.successMessage = resp.body.Message
		if s.successMessage == "" {
			s.successMessage = defaultSuccessMessage
		}
	} else {
		s.errorMessage = resp.body.Message
		if s.errorMessage == "" {
			s.errorMessage = defaultErrorMessage
		}
	}
	s.scrollTop()
}

type postResult struct {
	ok   bool
	body submitResponse
}

func (s *Submitter) post(ctx context.Context, draft Draft) (*postResult, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/registrations", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	result := &postResult{ok: httpResp.StatusCode >= 200 && httpResp.StatusCode < 300}
	if err := json.NewDecoder(httpResp.Body).Decode(&result.body); err != nil {
		// A malformed body on a failed request still surfaces the default
		// error; on a 2xx it is a transport failure.
		if result.ok {
			return nil, err
		}
	}
	return result, nil
}

func (s *Submitter) scrollTop() {
	if s.onScrollTop != nil {
		s.onScrollTop()
	}
}
