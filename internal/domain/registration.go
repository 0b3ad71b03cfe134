package domain

import (
	"fmt"
	"strings"
	"time"
)

// RegistrationForm holds the fields a student fills in when signing up for an event.
type RegistrationForm struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	USN        string `json:"usn,omitempty"`
	Department string `json:"department,omitempty"`
}

func (f RegistrationForm) Validate() error {
	if strings.TrimSpace(f.FullName) == "" {
		return fmt.Errorf("%w: full name is required", ErrValidation)
	}
	if !strings.Contains(f.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	return nil
}

type Registration struct {
	ID        string           `json:"id"`
	EventID   string           `json:"event_id"`
	UserID    string           `json:"user_id"`
	Form      RegistrationForm `json:"form"`
	CreatedAt time.Time        `json:"created_at"`
}

// IDSet is a set of event ids.
type IDSet map[string]struct{}

func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}
