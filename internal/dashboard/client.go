package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"raeesatours/internal/db"
	"raeesatours/internal/entities"
)

// Client talks to the admin API. The bearer token is injected at
// construction rather than looked up per call.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, token: token, http: httpClient}
}

// ListRegistrations fetches one page of registrations with optional filters.
func (c *Client) ListRegistrations(ctx context.Context, query entities.RegistrationListQuery) ([]db.Registration, *entities.Pagination, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", query.Page))
	if query.Destination != "" {
		params.Set("destination", query.Destination)
	}
	if query.StartDate != "" && query.EndDate != "" {
		params.Set("startDate", query.StartDate)
		params.Set("endDate", query.EndDate)
	}

	var registrations []db.Registration
	resp, err := c.do(ctx, http.MethodGet, "/api/registrations?"+params.Encode(), nil, &registrations)
	if err != nil {
		return nil, nil, err
	}
	return registrations, resp.Pagination, nil
}

func (c *Client) DeleteRegistration(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/registrations/"+id, nil, nil)
	return err
}

func (c *Client) ListContacts(ctx context.Context) ([]db.ContactMessage, error) {
	var messages []db.ContactMessage
	if _, err := c.do(ctx, http.MethodGet, "/api/contact", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) UpdateContact(ctx context.Context, id string, update entities.ContactUpdateRequest) (*db.ContactMessage, error) {
	var message db.ContactMessage
	if _, err := c.do(ctx, http.MethodPatch, "/api/contact/"+id, update, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/contact/"+id, nil, nil)
	return err
}

// envelope mirrors the API response with data left raw until the caller's
// type is known.
type envelope struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Data       json.RawMessage      `json:"data"`
	Pagination *entities.Pagination `json:"pagination"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	var resp envelope
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 || !resp.Success {
		if resp.Message != "" {
			return nil, errors.New(resp.Message)
		}
		return nil, fmt.Errorf("request failed with status %d", httpResp.StatusCode)
	}

	if out != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, out); err != nil {
			return nil, fmt.Errorf("malformed response data: %w", err)
		}
	}
	return &resp, nil
}
