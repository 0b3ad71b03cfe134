package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Organizer   string    `json:"organizer"`
	ImageURL    string    `json:"image_url"`
	Attendees   int       `json:"attendees"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventDraft is an event as submitted by an admin: the remote assigns ID and Attendees.
type EventDraft struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Organizer   string   `json:"organizer"`
	ImageURL    string   `json:"image_url"`
	Capacity    int      `json:"capacity"`
}

// Draft returns the editable part of the event.
func (e *Event) Draft() EventDraft {
	return EventDraft{
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Category:    e.Category,
		Description: e.Description,
		Organizer:   e.Organizer,
		ImageURL:    e.ImageURL,
		Capacity:    e.Capacity,
	}
}

// WithDraft returns a copy of e with every editable field replaced by d.
// ID and Attendees are kept.
func (e *Event) WithDraft(d EventDraft) *Event {
	out := *e
	out.Title = d.Title
	out.Date = d.Date
	out.Time = d.Time
	out.Location = d.Location
	out.Category = d.Category
	out.Description = d.Description
	out.Organizer = d.Organizer
	out.ImageURL = d.ImageURL
	out.Capacity = d.Capacity
	return &out
}

func (d EventDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if d.Time != "" {
		if _, err := time.Parse(TimeLayout, d.Time); err != nil {
			return fmt.Errorf("%w: time must be HH:MM", ErrValidation)
		}
	}
	if !d.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, d.Category)
	}
	if d.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	return nil
}

// CatalogStats backs the admin summary banner.
type CatalogStats struct {
	TotalEvents    int `json:"total_events"`
	TotalAttendees int `json:"total_attendees"`
	AvgAttendance  int `json:"avg_attendance"`
}

func Summarize(events []*Event) CatalogStats {
	var s CatalogStats
	s.TotalEvents = len(events)
	for _, e := range events {
		s.TotalAttendees += e.Attendees
	}
	if s.TotalEvents > 0 {
		s.AvgAttendance = int(math.Round(float64(s.TotalAttendees) / float64(s.TotalEvents)))
	}
	return s
}
