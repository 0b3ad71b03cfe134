// Package remote talks to eventhub-server over HTTP. It implements the
// collaborator ports used by the catalog store and the registration ledger,
// plus sign-in.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/stpnv0/EventHub/internal/domain"
)

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote returned %d: %s", e.StatusCode, e.Message)
}

var knownErrors = []error{
	domain.ErrEventNotFound,
	domain.ErrUserNotFound,
	domain.ErrEventFull,
	domain.ErrAlreadyRegistered,
	domain.ErrUsernameTaken,
	domain.ErrInvalidCredentials,
}

// Unwrap maps the answer back to a domain error so callers can use errors.Is.
func (e *StatusError) Unwrap() error {
	for _, known := range knownErrors {
		if strings.Contains(e.Message, known.Error()) {
			return known
		}
	}
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusBadRequest:
		return domain.ErrValidation
	default:
		return nil
	}
}

type Client struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	USN        string `json:"usn,omitempty"`
	Department string `json:"department,omitempty"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login signs in and keeps the issued token for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{username, password}, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	c.mu.Lock()
	c.token = resp.Token
	c.mu.Unlock()

	return &resp.User, nil
}

// SignUp creates a student account and signs it in.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*domain.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &resp); err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}

	c.mu.Lock()
	c.token = resp.Token
	c.mu.Unlock()

	return &resp.User, nil
}

func (c *Client) Logout() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func (c *Client) GetEvents(ctx context.Context) ([]*domain.Event, error) {
	var events []*domain.Event
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, &events); err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error) {
	var created domain.Event
	if err := c.do(ctx, http.MethodPost, "/api/events", draft, &created); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateEvent(ctx context.Context, event *domain.Event) error {
	path := "/api/events/" + url.PathEscape(event.ID)
	if err := c.do(ctx, http.MethodPut, path, event.Draft(), nil); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/events/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (c *Client) DeleteAllEvents(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/api/events", nil, nil); err != nil {
		return fmt.Errorf("delete all events: %w", err)
	}
	return nil
}

type registrationsResponse struct {
	EventIDs []string `json:"event_ids"`
}

type registerRequest struct {
	EventID string                  `json:"event_id"`
	Form    domain.RegistrationForm `json:"form"`
}

func (c *Client) GetUserRegistrations(ctx context.Context, userID string) ([]string, error) {
	var resp registrationsResponse
	path := "/api/users/" + url.PathEscape(userID) + "/registrations"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get registrations: %w", err)
	}
	return resp.EventIDs, nil
}

func (c *Client) RegisterForEvent(ctx context.Context, userID, eventID string, form domain.RegistrationForm) error {
	path := "/api/users/" + url.PathEscape(userID) + "/registrations"
	if err := c.do(ctx, http.MethodPost, path, registerRequest{EventID: eventID, Form: form}, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (c *Client) GetEventAttendees(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	var regs []*domain.Registration
	path := "/api/events/" + url.PathEscape(eventID) + "/attendees"
	if err := c.do(ctx, http.MethodGet, path, nil, &regs); err != nil {
		return nil, fmt.Errorf("get attendees: %w", err)
	}
	return regs, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = resp.Status
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
