// Package filter derives the visible part of the catalog from the view state.
package filter

import (
	"fmt"
	"strings"

	"github.com/stpnv0/EventHub/internal/domain"
)

type View string

const (
	ViewDashboard View = "dashboard"
	ViewMyEvents  View = "my-events"
)

func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ViewDashboard, ViewMyEvents:
		return v, nil
	default:
		return "", fmt.Errorf("%w: unknown view %q", domain.ErrValidation, s)
	}
}

// Criteria is the part of the view state that affects which events are shown.
// An empty Category behaves like domain.CategoryAll.
type Criteria struct {
	View     View
	Category domain.Category
	Query    string
}

// VisibleEvents returns the events that satisfy every clause of c, in catalog order.
func VisibleEvents(catalog []*domain.Event, registered domain.IDSet, c Criteria) []*domain.Event {
	query := strings.ToLower(c.Query)

	out := make([]*domain.Event, 0, len(catalog))
	for _, e := range catalog {
		if c.View == ViewMyEvents && !registered.Has(e.ID) {
			continue
		}
		if !matchesCategory(e, c.Category) {
			continue
		}
		if !matchesQuery(e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesCategory(e *domain.Event, c domain.Category) bool {
	return c == "" || c == domain.CategoryAll || e.Category == c
}

// query must already be lower-cased.
func matchesQuery(e *domain.Event, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), query) ||
		strings.Contains(strings.ToLower(e.Description), query)
}
