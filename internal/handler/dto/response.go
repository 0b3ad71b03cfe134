package dto

import (
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Organizer   string `json:"organizer"`
	ImageURL    string `json:"image_url"`
	Attendees   int    `json:"attendees"`
	Capacity    int    `json:"capacity"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	Avatar     string `json:"avatar,omitempty"`
	USN        string `json:"usn,omitempty"`
	Department string `json:"department,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type RegistrationsResponse struct {
	EventIDs []string `json:"event_ids"`
}

type RegistrationResponse struct {
	ID        string           `json:"id"`
	EventID   string           `json:"event_id"`
	UserID    string           `json:"user_id"`
	Form      RegistrationForm `json:"form"`
	CreatedAt string           `json:"created_at"`
}

type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Category:    string(e.Category),
		Description: e.Description,
		Organizer:   e.Organizer,
		ImageURL:    e.ImageURL,
		Attendees:   e.Attendees,
		Capacity:    e.Capacity,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Role:       string(u.Role),
		Avatar:     u.Avatar,
		USN:        u.USN,
		Department: u.Department,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:      r.ID,
		EventID: r.EventID,
		UserID:  r.UserID,
		Form: RegistrationForm{
			FullName:   r.Form.FullName,
			Email:      r.Form.Email,
			Phone:      r.Form.Phone,
			USN:        r.Form.USN,
			Department: r.Form.Department,
		},
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
