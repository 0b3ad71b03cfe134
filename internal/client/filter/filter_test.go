package filter

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []*domain.Event {
	return []*domain.Event{
		{ID: "1", Title: "Tech Talk", Description: "Cloud native Go", Category: domain.CategoryAcademic},
		{ID: "2", Title: "Football Finals", Description: "Inter-college match", Category: domain.CategorySports},
		{ID: "3", Title: "Resume Clinic", Description: "Bring your tech CV", Category: domain.CategoryCareer},
		{ID: "4", Title: "Open Mic", Description: "Poetry and music", Category: domain.CategoryCultural},
	}
}

func ids(events []*domain.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestVisibleEvents_DashboardAllEmptyQueryIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 20; n++ {
		var events []*domain.Event
		registered := domain.NewIDSet()
		size := rng.Intn(15)
		for i := 0; i < size; i++ {
			id := fmt.Sprintf("e%d", i)
			events = append(events, &domain.Event{
				ID:       id,
				Title:    fmt.Sprintf("Event %d", rng.Int()),
				Category: domain.Categories[rng.Intn(len(domain.Categories))],
			})
			if rng.Intn(2) == 0 {
				registered[id] = struct{}{}
			}
		}

		got := VisibleEvents(events, registered, Criteria{View: ViewDashboard, Category: domain.CategoryAll})

		require.Len(t, got, len(events))
		for i := range events {
			assert.Same(t, events[i], got[i])
		}
	}
}

func TestVisibleEvents_MyEventsIsRegisteredSubsetInOrder(t *testing.T) {
	events := catalog()
	registered := domain.NewIDSet("4", "1", "missing")

	got := VisibleEvents(events, registered, Criteria{View: ViewMyEvents, Category: domain.CategoryAll})

	assert.Equal(t, []string{"1", "4"}, ids(got))
}

func TestVisibleEvents_MyEventsWithNoRegistrations(t *testing.T) {
	got := VisibleEvents(catalog(), domain.NewIDSet(), Criteria{View: ViewMyEvents})

	assert.Empty(t, got)
}

func TestVisibleEvents_SearchIsCaseInsensitive(t *testing.T) {
	for _, q := range []string{"tech", "TECH", "Tech", "tEcH"} {
		got := VisibleEvents(catalog(), nil, Criteria{View: ViewDashboard, Query: q})
		assert.Equal(t, []string{"1", "3"}, ids(got), "query %q", q)
	}
}

func TestVisibleEvents_SearchMatchesDescription(t *testing.T) {
	got := VisibleEvents(catalog(), nil, Criteria{View: ViewDashboard, Query: "poetry"})

	assert.Equal(t, []string{"4"}, ids(got))
}

func TestVisibleEvents_SearchNoMatch(t *testing.T) {
	got := VisibleEvents(catalog(), nil, Criteria{View: ViewDashboard, Query: "chess"})

	assert.Empty(t, got)
}

func TestVisibleEvents_CategoryIsExact(t *testing.T) {
	got := VisibleEvents(catalog(), nil, Criteria{View: ViewDashboard, Category: domain.CategorySports})
	assert.Equal(t, []string{"2"}, ids(got))

	got = VisibleEvents(catalog(), nil, Criteria{View: ViewDashboard, Category: domain.CategoryWorkshop})
	assert.Empty(t, got)

	got = VisibleEvents(catalog(), nil, Criteria{View: ViewDashboard, Category: ""})
	assert.Len(t, got, 4)
}

func TestVisibleEvents_AllClausesMustHold(t *testing.T) {
	registered := domain.NewIDSet("1", "2", "3")

	got := VisibleEvents(catalog(), registered, Criteria{
		View:     ViewMyEvents,
		Category: domain.CategoryCareer,
		Query:    "tech",
	})

	assert.Equal(t, []string{"3"}, ids(got))
}

func TestVisibleEvents_DoesNotModifyInput(t *testing.T) {
	events := catalog()
	before := ids(events)

	_ = VisibleEvents(events, domain.NewIDSet("2"), Criteria{View: ViewMyEvents})

	assert.Equal(t, before, ids(events))
}

func TestParseView(t *testing.T) {
	v, err := ParseView("my-events")
	require.NoError(t, err)
	assert.Equal(t, ViewMyEvents, v)

	_, err = ParseView("calendar")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
