package dto

import "github.com/stpnv0/EventHub/internal/domain"

type SignUpRequest struct {
	Name           string `json:"name"     binding:"required"`
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required"`
	USN            string `json:"usn"`
	Department     string `json:"department"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// EventRequest is the body of create and update. Field rules live in
// domain.EventDraft.Validate.
type EventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Organizer   string `json:"organizer"`
	ImageURL    string `json:"image_url"`
	Capacity    int    `json:"capacity"`
}

func (r EventRequest) ToDraft() domain.EventDraft {
	return domain.EventDraft{
		Title:       r.Title,
		Date:        r.Date,
		Time:        r.Time,
		Location:    r.Location,
		Category:    domain.Category(r.Category),
		Description: r.Description,
		Organizer:   r.Organizer,
		ImageURL:    r.ImageURL,
		Capacity:    r.Capacity,
	}
}

type RegistrationForm struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	USN        string `json:"usn,omitempty"`
	Department string `json:"department,omitempty"`
}

func (f RegistrationForm) ToDomain() domain.RegistrationForm {
	return domain.RegistrationForm{
		FullName:   f.FullName,
		Email:      f.Email,
		Phone:      f.Phone,
		USN:        f.USN,
		Department: f.Department,
	}
}

type RegisterRequest struct {
	EventID string           `json:"event_id" binding:"required,uuid"`
	Form    RegistrationForm `json:"form"`
}
