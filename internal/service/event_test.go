package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type eventDeps struct {
	events   *mocks.MockEventRepo
	regs     *mocks.MockRegistrationRepo
	users    *mocks.MockUserRepo
	notifier *mocks.MockRegistrationNotifier
	svc      *EventService
}

func newEventService(t *testing.T) eventDeps {
	d := eventDeps{
		events:   mocks.NewMockEventRepo(t),
		regs:     mocks.NewMockRegistrationRepo(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockRegistrationNotifier(t),
	}
	d.svc = NewEventService(d.events, d.regs, d.users, d.notifier, newTestLogger(t))
	return d
}

func validDraft() domain.EventDraft {
	return domain.EventDraft{
		Title:    "Tech Talk",
		Date:     "2026-11-02",
		Time:     "18:30",
		Location: "Main Hall",
		Category: domain.CategoryAcademic,
		Capacity: 100,
	}
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	d := newEventService(t)

	d.events.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	event, err := d.svc.CreateEvent(context.Background(), validDraft())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Tech Talk", event.Title)
	assert.Equal(t, 100, event.Capacity)
	assert.Zero(t, event.Attendees)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	d := newEventService(t)

	draft := validDraft()
	draft.Capacity = 0

	_, err := d.svc.CreateEvent(context.Background(), draft)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_RepoError(t *testing.T) {
	d := newEventService(t)

	d.events.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := d.svc.CreateEvent(context.Background(), validDraft())

	assert.Error(t, err)
}

func TestEventService_UpdateEvent_KeepsAttendees(t *testing.T) {
	d := newEventService(t)

	existing := &domain.Event{ID: "e1", Title: "Old", Attendees: 12, Capacity: 50}
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)
	d.events.EXPECT().Update(mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
		return e.ID == "e1" && e.Title == "Tech Talk" && e.Attendees == 12 && e.Capacity == 100
	})).Return(nil)

	updated, err := d.svc.UpdateEvent(context.Background(), "e1", validDraft())

	require.NoError(t, err)
	assert.Equal(t, 12, updated.Attendees)
	assert.Equal(t, "Old", existing.Title)
}

func TestEventService_UpdateEvent_CapacityBelowAttendees(t *testing.T) {
	d := newEventService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Attendees: 120}, nil)

	_, err := d.svc.UpdateEvent(context.Background(), "e1", validDraft())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_UpdateEvent_NotFound(t *testing.T) {
	d := newEventService(t)

	d.events.EXPECT().GetByID(mock.Anything, "zz").Return(nil, domain.ErrEventNotFound)

	_, err := d.svc.UpdateEvent(context.Background(), "zz", validDraft())

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_DeleteEvent_NotifiesAttendees(t *testing.T) {
	d := newEventService(t)

	event := &domain.Event{ID: "e1", Title: "Gala"}
	user := &domain.User{ID: "u1"}

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.regs.EXPECT().ListByEvent(mock.Anything, "e1").Return([]*domain.Registration{{EventID: "e1", UserID: "u1"}}, nil)
	d.events.EXPECT().Delete(mock.Anything, "e1").Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	notified := make(chan struct{})
	d.notifier.EXPECT().NotifyEventCancelled(mock.Anything, user, event).
		Run(func(context.Context, *domain.User, *domain.Event) { close(notified) }).
		Return()

	require.NoError(t, d.svc.DeleteEvent(context.Background(), "e1"))

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("attendee was not notified")
	}
}

func TestEventService_DeleteEvent_NoAttendees(t *testing.T) {
	d := newEventService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	d.regs.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)
	d.events.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	require.NoError(t, d.svc.DeleteEvent(context.Background(), "e1"))
}

func TestEventService_DeleteEvent_NotFound(t *testing.T) {
	d := newEventService(t)

	d.events.EXPECT().GetByID(mock.Anything, "zz").Return(nil, domain.ErrEventNotFound)

	assert.ErrorIs(t, d.svc.DeleteEvent(context.Background(), "zz"), domain.ErrEventNotFound)
}

func TestEventService_DeleteAll(t *testing.T) {
	d := newEventService(t)

	d.events.EXPECT().DeleteAll(mock.Anything).Return(int64(4), nil)

	n, err := d.svc.DeleteAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestEventService_Attendees(t *testing.T) {
	d := newEventService(t)

	regs := []*domain.Registration{{ID: "r1", EventID: "e1", UserID: "u1"}}
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	d.regs.EXPECT().ListByEvent(mock.Anything, "e1").Return(regs, nil)

	got, err := d.svc.Attendees(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, regs, got)
}

func TestEventService_List(t *testing.T) {
	d := newEventService(t)

	events := []*domain.Event{{ID: "e1"}, {ID: "e2"}}
	d.events.EXPECT().List(mock.Anything).Return(events, nil)

	got, err := d.svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
