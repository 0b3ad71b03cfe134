package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/auth"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct {
	called []string
}

func (s *stubHandler) hit(name string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		s.called = append(s.called, name)
		c.Status(http.StatusOK)
	}
}

func (s *stubHandler) SignUp(c *ginext.Context)               { s.hit("SignUp")(c) }
func (s *stubHandler) Login(c *ginext.Context)                { s.hit("Login")(c) }
func (s *stubHandler) ListEvents(c *ginext.Context)           { s.hit("ListEvents")(c) }
func (s *stubHandler) CreateEvent(c *ginext.Context)          { s.hit("CreateEvent")(c) }
func (s *stubHandler) UpdateEvent(c *ginext.Context)          { s.hit("UpdateEvent")(c) }
func (s *stubHandler) DeleteEvent(c *ginext.Context)          { s.hit("DeleteEvent")(c) }
func (s *stubHandler) DeleteAllEvents(c *ginext.Context)      { s.hit("DeleteAllEvents")(c) }
func (s *stubHandler) ListAttendees(c *ginext.Context)        { s.hit("ListAttendees")(c) }
func (s *stubHandler) GetUserRegistrations(c *ginext.Context) { s.hit("GetUserRegistrations")(c) }
func (s *stubHandler) RegisterForEvent(c *ginext.Context)     { s.hit("RegisterForEvent")(c) }

func TestInitRouter_Access(t *testing.T) {
	tokens := auth.NewTokenManager("router-test-secret-123", time.Hour)
	student, err := tokens.Issue(&domain.User{ID: "u1", Role: domain.RoleStudent})
	require.NoError(t, err)
	admin, err := tokens.Issue(&domain.User{ID: "a1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"health is public", http.MethodGet, "/health", "", http.StatusOK},
		{"login is public", http.MethodPost, "/api/auth/login", "", http.StatusOK},
		{"signup is public", http.MethodPost, "/api/auth/signup", "", http.StatusOK},
		{"events need a token", http.MethodGet, "/api/events", "", http.StatusUnauthorized},
		{"student lists events", http.MethodGet, "/api/events", student, http.StatusOK},
		{"student cannot create", http.MethodPost, "/api/events", student, http.StatusForbidden},
		{"student cannot delete all", http.MethodDelete, "/api/events", student, http.StatusForbidden},
		{"student cannot list attendees", http.MethodGet, "/api/events/e1/attendees", student, http.StatusForbidden},
		{"admin creates", http.MethodPost, "/api/events", admin, http.StatusOK},
		{"admin updates", http.MethodPut, "/api/events/e1", admin, http.StatusOK},
		{"admin deletes", http.MethodDelete, "/api/events/e1", admin, http.StatusOK},
		{"student registers", http.MethodPost, "/api/users/u1/registrations", student, http.StatusOK},
		{"student reads registrations", http.MethodGet, "/api/users/u1/registrations", student, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &stubHandler{}
			r := InitRouter("test", h, tokens)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want != http.StatusOK {
				assert.Empty(t, h.called)
			}
		})
	}
}
