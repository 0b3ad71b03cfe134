package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_LoginStoresToken(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "secret", req.Password)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"token": "tok-1",
			"user":  map[string]any{"id": "u1", "name": "Alice", "username": "alice", "role": "admin"},
		})
	})
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, []map[string]any{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL+"/", srv.Client())

	user, err := c.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, user.IsAdmin())

	_, err = c.GetEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)

	c.Logout()
	_, err = c.GetEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_GetEvents_Decodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": "e1", "title": "Hackathon", "category": "Cultural", "attendees": 12, "capacity": 50, "image_url": "img"},
		})
	}))
	defer srv.Close()

	events, err := New(srv.URL, srv.Client()).GetEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Hackathon", events[0].Title)
	assert.Equal(t, domain.CategoryCultural, events[0].Category)
	assert.Equal(t, 12, events[0].Attendees)
	assert.Equal(t, "img", events[0].ImageURL)
}

func TestClient_UpdateEvent_SendsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/events/e1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Renamed", body["title"])
		assert.NotContains(t, body, "id")
		assert.NotContains(t, body, "attendees")

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := New(srv.URL, srv.Client()).UpdateEvent(context.Background(), &domain.Event{ID: "e1", Title: "Renamed", Attendees: 3})
	require.NoError(t, err)
}

func TestClient_RegisterForEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/u1/registrations", r.URL.Path)

		var req registerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "e1", req.EventID)
		assert.Equal(t, "Alice", req.Form.FullName)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := New(srv.URL, srv.Client()).RegisterForEvent(context.Background(), "u1", "e1", domain.RegistrationForm{FullName: "Alice"})
	require.NoError(t, err)
}

func TestClient_GetUserRegistrations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/u1/registrations", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"event_ids": []string{"e1", "e2"}})
	}))
	defer srv.Close()

	ids, err := New(srv.URL, srv.Client()).GetUserRegistrations(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2"}, ids)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		want    error
	}{
		{"already registered", http.StatusConflict, domain.ErrAlreadyRegistered.Error(), domain.ErrAlreadyRegistered},
		{"event full", http.StatusConflict, domain.ErrEventFull.Error(), domain.ErrEventFull},
		{"not found", http.StatusNotFound, domain.ErrEventNotFound.Error(), domain.ErrEventNotFound},
		{"unauthorized", http.StatusUnauthorized, "token expired", domain.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, "admins only", domain.ErrForbidden},
		{"bad request", http.StatusBadRequest, "title is required", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, map[string]string{"error": tt.message})
			}))
			defer srv.Close()

			err := New(srv.URL, srv.Client()).RegisterForEvent(context.Background(), "u1", "e1", domain.RegistrationForm{})

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := New(srv.URL, srv.Client()).DeleteAllEvents(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "500 Internal Server Error", statusErr.Message)
	assert.NoError(t, statusErr.Unwrap())
}

func TestClient_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL, srv.Client()).GetEvents(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
