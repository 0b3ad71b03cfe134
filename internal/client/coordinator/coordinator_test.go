package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/client/catalog"
	"github.com/stpnv0/EventHub/internal/client/filter"
	"github.com/stpnv0/EventHub/internal/client/ledger"
	"github.com/stpnv0/EventHub/internal/client/notice"
	"github.com/stpnv0/EventHub/internal/client/ports/mocks"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var (
	admin   = &domain.User{ID: "u-admin", Name: "Grace", Username: "grace", Role: domain.RoleAdmin}
	student = &domain.User{ID: "u-1", Name: "Ada", Username: "ada", Role: domain.RoleStudent}
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fixture struct {
	events  *mocks.MockEventRemote
	regs    *mocks.MockRegistrationRemote
	catalog *catalog.Store
	ledger  *ledger.Ledger
	notices *notice.Channel
	c       *Coordinator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := newTestLogger(t)

	f := &fixture{
		events:  mocks.NewMockEventRemote(t),
		regs:    mocks.NewMockRegistrationRemote(t),
		notices: notice.New(time.Minute),
	}
	f.catalog = catalog.NewStore(f.events, log)
	f.ledger = ledger.New(f.regs, log)
	f.c = New(f.catalog, f.ledger, f.notices, log)

	t.Cleanup(f.c.Wait)
	return f
}

func (f *fixture) login(t *testing.T, user *domain.User, events []*domain.Event, registered ...string) {
	t.Helper()
	f.events.EXPECT().GetEvents(mock.Anything).Return(events, nil).Once()
	f.regs.EXPECT().GetUserRegistrations(mock.Anything, user.ID).Return(registered, nil).Once()

	require.NoError(t, f.c.Login(context.Background(), user))
}

func (f *fixture) notice() string {
	msg, _ := f.notices.Current()
	return msg
}

func threeEvents() []*domain.Event {
	return []*domain.Event{
		{ID: "a", Title: "Tech Talk", Category: domain.CategoryAcademic, Attendees: 10, Capacity: 50},
		{ID: "b", Title: "Football Finals", Category: domain.CategorySports, Attendees: 4, Capacity: 30},
		{ID: "c", Title: "Open Mic", Description: "tech and poetry", Category: domain.CategoryCultural, Capacity: 20},
	}
}

func eventIDs(events []*domain.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

// --- Session ---

func TestCoordinator_Login_LoadsCatalogAndLedger(t *testing.T) {
	f := newFixture(t)

	f.login(t, student, threeEvents(), "b")

	state := f.c.State()
	assert.Equal(t, student, state.User)
	assert.Equal(t, filter.ViewDashboard, state.View)
	assert.Equal(t, domain.CategoryAll, state.Category)
	assert.Equal(t, "Welcome back, Ada!", state.Notice)
	assert.Equal(t, []string{"a", "b", "c"}, eventIDs(f.c.Visible()))
	assert.True(t, f.c.IsRegistered("b"))
}

func TestCoordinator_Login_FetchFailureIsReported(t *testing.T) {
	f := newFixture(t)

	f.events.EXPECT().GetEvents(mock.Anything).Return(nil, errors.New("offline"))
	f.regs.EXPECT().GetUserRegistrations(mock.Anything, student.ID).Return([]string{}, nil)

	err := f.c.Login(context.Background(), student)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, msgFetchEventsFailed, f.notice())
	assert.Equal(t, student, f.c.State().User)
}

func TestCoordinator_Logout_ResetsEverything(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, threeEvents(), "a", "b")

	require.NoError(t, f.c.SetView(filter.ViewMyEvents))
	require.NoError(t, f.c.SetCategory(domain.CategorySports))
	f.c.SetQuery("foot")
	f.notices.Show("something")

	f.c.Logout()

	state := f.c.State()
	assert.Nil(t, state.User)
	assert.Equal(t, filter.ViewDashboard, state.View)
	assert.Equal(t, domain.CategoryAll, state.Category)
	assert.Empty(t, state.Query)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Notice)
	assert.Empty(t, f.catalog.List())
	assert.Empty(t, f.ledger.IDs())
	assert.Empty(t, f.c.Visible())
}

func TestCoordinator_RefreshAll_SignedOutIsNoop(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.c.RefreshAll(context.Background()))
}

func TestCoordinator_Refresh_FailureKeepsSnapshot(t *testing.T) {
	f := newFixture(t)
	events := threeEvents()
	f.login(t, student, events)

	f.events.EXPECT().GetEvents(mock.Anything).Return(nil, errors.New("502")).Once()

	err := f.c.Refresh(context.Background())

	require.Error(t, err)
	assert.Equal(t, events, f.catalog.List())
	assert.Equal(t, msgFetchEventsFailed, f.notice())
}

func TestCoordinator_RefreshRegistrations_FailureKeepsLedger(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, threeEvents(), "a")

	f.regs.EXPECT().GetUserRegistrations(mock.Anything, student.ID).Return(nil, errors.New("502")).Once()

	err := f.c.RefreshRegistrations(context.Background())

	require.Error(t, err)
	assert.True(t, f.c.IsRegistered("a"))
	assert.Equal(t, msgFetchRegistrationsFail, f.notice())
}

func TestCoordinator_Refresh_LoadingFlag(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	f.events.EXPECT().GetEvents(mock.Anything).RunAndReturn(func(context.Context) ([]*domain.Event, error) {
		close(started)
		<-release
		return threeEvents(), nil
	}).Once()

	done := make(chan error, 1)
	go func() { done <- f.c.Refresh(context.Background()) }()

	<-started
	assert.True(t, f.c.State().Loading)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, f.c.State().Loading)
	assert.Len(t, f.c.Visible(), 3)
}

func TestCoordinator_Login_SwitchingUsersDropsPreviousLedger(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, threeEvents(), "a", "b")
	require.NoError(t, f.c.SetView(filter.ViewMyEvents))

	f.events.EXPECT().GetEvents(mock.Anything).Return(threeEvents(), nil).Once()
	f.regs.EXPECT().GetUserRegistrations(mock.Anything, admin.ID).Return(nil, errors.New("502")).Once()

	err := f.c.Login(context.Background(), admin)

	require.Error(t, err)
	assert.Equal(t, admin, f.c.State().User)
	assert.Equal(t, filter.ViewDashboard, f.c.State().View)
	assert.False(t, f.c.IsRegistered("a"))
	assert.False(t, f.c.IsRegistered("b"))
	assert.Empty(t, f.ledger.IDs())
	assert.Len(t, f.c.Visible(), 3)
}

func TestCoordinator_Logout_WaitsForRefreshInFlight(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, nil, "a")

	started := make(chan struct{})
	release := make(chan struct{})
	f.events.EXPECT().GetEvents(mock.Anything).RunAndReturn(func(context.Context) ([]*domain.Event, error) {
		close(started)
		<-release
		return threeEvents(), nil
	}).Once()
	f.regs.EXPECT().GetUserRegistrations(mock.Anything, student.ID).Return([]string{"a", "b"}, nil).Maybe()

	refreshed := make(chan error, 1)
	go func() { refreshed <- f.c.RefreshAll(context.Background()) }()
	<-started

	loggedOut := make(chan struct{})
	go func() {
		f.c.Logout()
		close(loggedOut)
	}()

	select {
	case <-loggedOut:
		t.Fatal("logout returned while a refresh was still writing")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-refreshed
	<-loggedOut

	assert.Nil(t, f.c.State().User)
	assert.Empty(t, f.catalog.List())
	assert.Empty(t, f.ledger.IDs())
	assert.Empty(t, f.c.Visible())
}

func TestCoordinator_Login_StaleRefreshDoesNotClearLoading(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	f.events.EXPECT().GetEvents(mock.Anything).RunAndReturn(func(context.Context) ([]*domain.Event, error) {
		close(started)
		<-release
		return threeEvents(), nil
	}).Once()

	refreshed := make(chan error, 1)
	go func() { refreshed <- f.c.Refresh(context.Background()) }()
	<-started

	adminStarted := make(chan struct{})
	adminRelease := make(chan struct{})
	f.events.EXPECT().GetEvents(mock.Anything).RunAndReturn(func(context.Context) ([]*domain.Event, error) {
		close(adminStarted)
		<-adminRelease
		return threeEvents()[:1], nil
	}).Once()
	f.regs.EXPECT().GetUserRegistrations(mock.Anything, admin.ID).Return([]string{}, nil).Once()

	loggedIn := make(chan error, 1)
	go func() { loggedIn <- f.c.Login(context.Background(), admin) }()

	close(release)
	<-refreshed
	<-adminStarted

	assert.True(t, f.c.State().Loading)

	close(adminRelease)
	require.NoError(t, <-loggedIn)

	state := f.c.State()
	assert.Equal(t, admin, state.User)
	assert.False(t, state.Loading)
	assert.Equal(t, []string{"a"}, eventIDs(f.c.Visible()))
}

// --- View state ---

func TestCoordinator_Visible_FollowsViewState(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, threeEvents(), "a", "c")

	require.NoError(t, f.c.SetView(filter.ViewMyEvents))
	assert.Equal(t, []string{"a", "c"}, eventIDs(f.c.Visible()))

	f.c.SetQuery("TECH")
	assert.Equal(t, []string{"a", "c"}, eventIDs(f.c.Visible()))

	require.NoError(t, f.c.SetCategory(domain.CategoryCultural))
	assert.Equal(t, []string{"c"}, eventIDs(f.c.Visible()))

	require.NoError(t, f.c.SetView(filter.ViewDashboard))
	require.NoError(t, f.c.SetCategory(domain.CategoryAll))
	f.c.SetQuery("")
	assert.Equal(t, []string{"a", "b", "c"}, eventIDs(f.c.Visible()))
}

func TestCoordinator_SetView_RejectsUnknown(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.c.SetView("calendar"), domain.ErrValidation)
	assert.ErrorIs(t, f.c.SetCategory("Gaming"), domain.ErrValidation)
	assert.Equal(t, filter.ViewDashboard, f.c.State().View)
}

func TestCoordinator_Stats(t *testing.T) {
	f := newFixture(t)
	f.login(t, admin, threeEvents())

	stats := f.c.Stats()

	assert.Equal(t, domain.CatalogStats{TotalEvents: 3, TotalAttendees: 14, AvgAttendance: 5}, stats)
}

// --- Delete ---

func TestCoordinator_Delete_RollbackOnFailure(t *testing.T) {
	f := newFixture(t)
	events := threeEvents()
	f.login(t, admin, events)

	started := make(chan struct{})
	release := make(chan error)
	f.events.EXPECT().DeleteEvent(mock.Anything, "b").RunAndReturn(func(context.Context, string) error {
		close(started)
		return <-release
	}).Once()

	done := make(chan error, 1)
	go func() { done <- f.c.Delete(context.Background(), "b") }()

	<-started
	assert.Equal(t, []string{"a", "c"}, eventIDs(f.catalog.List()))
	assert.Equal(t, "Event deleted.", f.notice())

	release <- errors.New("permission denied")
	err := <-done

	var writeErr *domain.WriteError
	require.ErrorAs(t, err, &writeErr)

	restored := f.catalog.List()
	require.Len(t, restored, 3)
	for i := range events {
		assert.Same(t, events[i], restored[i])
	}
	assert.Equal(t, "Failed to delete event. Please try again.", f.notice())
}

func TestCoordinator_Delete_Success(t *testing.T) {
	f := newFixture(t)
	events := threeEvents()
	f.login(t, admin, events)

	f.events.EXPECT().DeleteEvent(mock.Anything, "b").Return(nil).Once()
	f.events.EXPECT().GetEvents(mock.Anything).Return([]*domain.Event{events[0], events[2]}, nil).Once()

	require.NoError(t, f.c.Delete(context.Background(), "b"))
	f.c.Wait()

	assert.Equal(t, []string{"a", "c"}, eventIDs(f.catalog.List()))
	assert.Equal(t, "Event deleted.", f.notice())
}

func TestCoordinator_Delete_BackgroundRefreshFailureIsSilent(t *testing.T) {
	f := newFixture(t)
	f.login(t, admin, threeEvents())

	f.events.EXPECT().DeleteEvent(mock.Anything, "a").Return(nil).Once()
	f.events.EXPECT().GetEvents(mock.Anything).Return(nil, errors.New("flaky")).Once()

	require.NoError(t, f.c.Delete(context.Background(), "a"))
	f.c.Wait()

	assert.Equal(t, []string{"b", "c"}, eventIDs(f.catalog.List()))
	assert.Equal(t, "Event deleted.", f.notice())
}

func TestCoordinator_Delete_StudentForbidden(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, threeEvents())

	err := f.c.Delete(context.Background(), "a")

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, f.catalog.List(), 3)
	assert.Equal(t, msgAdminOnly, f.notice())
}

func TestCoordinator_Delete_SignedOut(t *testing.T) {
	f := newFixture(t)

	err := f.c.Delete(context.Background(), "a")

	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
	assert.Equal(t, msgSignInRequired, f.notice())
}

// --- Create / Update ---

func TestCoordinator_Create_NotSpeculative(t *testing.T) {
	f := newFixture(t)
	events := threeEvents()
	f.login(t, admin, events)

	draft := domain.EventDraft{
		Title:    "Hackathon",
		Date:     "2026-12-01",
		Category: domain.CategoryWorkshop,
		Capacity: 80,
	}
	created := &domain.Event{ID: "d", Title: "Hackathon", Category: domain.CategoryWorkshop, Capacity: 80}

	started := make(chan struct{})
	release := make(chan struct{})
	f.events.EXPECT().
		CreateEvent(mock.Anything, mock.MatchedBy(func(d domain.EventDraft) bool {
			return d.Title == "Hackathon" && d.ImageURL == DefaultImageURL(domain.CategoryWorkshop)
		})).
		RunAndReturn(func(context.Context, domain.EventDraft) (*domain.Event, error) {
			close(started)
			<-release
			return created, nil
		}).Once()
	f.events.EXPECT().GetEvents(mock.Anything).Return(append(events, created), nil).Once()

	done := make(chan error, 1)
	go func() { done <- f.c.Create(context.Background(), draft) }()

	<-started
	assert.Equal(t, []string{"a", "b", "c"}, eventIDs(f.catalog.List()))

	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, []string{"a", "b", "c", "d"}, eventIDs(f.catalog.List()))
	assert.Equal(t, `Event "Hackathon" created successfully!`, f.notice())
}

func TestCoordinator_Create_KeepsExplicitImage(t *testing.T) {
	f := newFixture(t)
	f.login(t, admin, nil)

	draft := domain.EventDraft{Title: "Gala", Category: domain.CategorySocial, ImageURL: " https://img/gala.png "}
	f.events.EXPECT().
		CreateEvent(mock.Anything, mock.MatchedBy(func(d domain.EventDraft) bool {
			return d.ImageURL == "https://img/gala.png"
		})).
		Return(&domain.Event{ID: "g"}, nil).Once()
	f.events.EXPECT().GetEvents(mock.Anything).Return(nil, nil).Once()

	require.NoError(t, f.c.Create(context.Background(), draft))
}

func TestCoordinator_Create_Failure(t *testing.T) {
	f := newFixture(t)
	events := threeEvents()
	f.login(t, admin, events)

	f.events.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(nil, errors.New("400")).Once()

	err := f.c.Create(context.Background(), domain.EventDraft{Title: "X"})

	var writeErr *domain.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, events, f.catalog.List())
	assert.Equal(t, "Failed to create event.", f.notice())
}

func TestCoordinator_Create_StudentForbidden(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, nil)

	err := f.c.Create(context.Background(), domain.EventDraft{Title: "X"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCoordinator_Update_KeepsIDAndAttendees(t *testing.T) {
	f := newFixture(t)
	events := threeEvents()
	f.login(t, admin, events)

	draft := events[1].Draft()
	draft.Title = "Football Semi-Finals"

	f.events.EXPECT().
		UpdateEvent(mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
			return e.ID == "b" && e.Attendees == 4 && e.Title == "Football Semi-Finals" &&
				e.ImageURL == DefaultImageURL(domain.CategorySports)
		})).
		Return(nil).Once()
	f.events.EXPECT().GetEvents(mock.Anything).Return(events, nil).Once()

	require.NoError(t, f.c.Update(context.Background(), "b", draft))
	assert.Equal(t, `Event "Football Semi-Finals" updated successfully!`, f.notice())
	assert.Equal(t, "Football Finals", events[1].Title, "local event must not be patched")
}

func TestCoordinator_Update_UnknownEvent(t *testing.T) {
	f := newFixture(t)
	f.login(t, admin, threeEvents())

	err := f.c.Update(context.Background(), "zzz", domain.EventDraft{Title: "X"})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.Equal(t, "Failed to update event.", f.notice())
}

// --- Delete all ---

func TestCoordinator_DeleteAll_Success(t *testing.T) {
	f := newFixture(t)
	f.login(t, admin, threeEvents())

	f.events.EXPECT().DeleteAllEvents(mock.Anything).Return(nil).Once()
	f.events.EXPECT().GetEvents(mock.Anything).Return([]*domain.Event{}, nil).Once()

	require.NoError(t, f.c.DeleteAll(context.Background()))
	assert.Empty(t, f.catalog.List())
	assert.Equal(t, "All events have been deleted.", f.notice())
}

func TestCoordinator_DeleteAll_FailureIsNotOptimistic(t *testing.T) {
	f := newFixture(t)
	events := threeEvents()
	f.login(t, admin, events)

	f.events.EXPECT().DeleteAllEvents(mock.Anything).Return(errors.New("500")).Once()

	require.Error(t, f.c.DeleteAll(context.Background()))
	assert.Equal(t, events, f.catalog.List())
	assert.Equal(t, "Failed to delete all events.", f.notice())
}

// --- Register ---

func TestCoordinator_Register_RefreshesCatalogAndLedger(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, threeEvents())

	form := domain.RegistrationForm{FullName: "Ada Lovelace", Email: "ada@campus.edu"}
	updated := threeEvents()
	updated[1].Attendees = 5

	f.regs.EXPECT().RegisterForEvent(mock.Anything, student.ID, "b", form).Return(nil).Once()
	f.events.EXPECT().GetEvents(mock.Anything).Return(updated, nil).Once()
	f.regs.EXPECT().GetUserRegistrations(mock.Anything, student.ID).Return([]string{"b"}, nil).Once()

	require.NoError(t, f.c.Register(context.Background(), "b", form))

	assert.True(t, f.c.IsRegistered("b"))
	e, ok := f.catalog.Find("b")
	require.True(t, ok)
	assert.Equal(t, 5, e.Attendees)
	assert.Equal(t, "Successfully registered!", f.notice())

	require.NoError(t, f.c.SetView(filter.ViewMyEvents))
	assert.Equal(t, []string{"b"}, eventIDs(f.c.Visible()))
}

func TestCoordinator_Register_AlreadyRegisteredNeverCallsRemote(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, threeEvents(), "b")

	err := f.c.Register(context.Background(), "b", domain.RegistrationForm{})

	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	assert.Equal(t, msgAlreadyRegistered, f.notice())
	f.regs.AssertNotCalled(t, "RegisterForEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCoordinator_Register_UnknownEvent(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, threeEvents())

	err := f.c.Register(context.Background(), "zzz", domain.RegistrationForm{})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.Equal(t, msgEventNotFound, f.notice())
}

func TestCoordinator_Register_FailureMutatesNothing(t *testing.T) {
	f := newFixture(t)
	events := threeEvents()
	f.login(t, student, events)

	f.regs.EXPECT().RegisterForEvent(mock.Anything, student.ID, "a", mock.Anything).Return(errors.New("full")).Once()

	err := f.c.Register(context.Background(), "a", domain.RegistrationForm{})

	var writeErr *domain.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.False(t, f.c.IsRegistered("a"))
	assert.Equal(t, events, f.catalog.List())
	assert.Equal(t, "Registration failed. Please try again.", f.notice())
}

// --- Attendees ---

func TestCoordinator_Attendees_AdminOnly(t *testing.T) {
	f := newFixture(t)
	f.login(t, student, threeEvents())

	_, err := f.c.Attendees(context.Background(), "a")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCoordinator_Attendees(t *testing.T) {
	f := newFixture(t)
	f.login(t, admin, threeEvents())

	regs := []*domain.Registration{{ID: "r1", EventID: "a", UserID: student.ID}}
	f.regs.EXPECT().GetEventAttendees(mock.Anything, "a").Return(regs, nil).Once()
	f.regs.EXPECT().GetEventAttendees(mock.Anything, "b").Return(nil, errors.New("500")).Once()

	got, err := f.c.Attendees(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, regs, got)

	_, err = f.c.Attendees(context.Background(), "b")
	require.Error(t, err)
	assert.Equal(t, msgFetchAttendeesFailed, f.notice())
}

// --- Policy table ---

func TestPolicies_Table(t *testing.T) {
	for _, k := range []opKind{opCreate, opUpdate, opDelete, opDeleteAll, opRegister} {
		_, ok := policies[k]
		assert.True(t, ok, "missing policy for %s", k)
	}

	assert.True(t, policies[opDelete].optimistic)
	assert.Equal(t, refreshBackground, policies[opDelete].catalog)

	for _, k := range []opKind{opCreate, opUpdate, opDeleteAll, opRegister} {
		assert.False(t, policies[k].optimistic, "%s must wait for the remote", k)
		assert.Equal(t, refreshForeground, policies[k].catalog, k.String())
	}

	assert.True(t, policies[opRegister].ledger)
	assert.False(t, policies[opRegister].adminOnly)
}

func TestDefaultImageURL(t *testing.T) {
	for _, c := range domain.Categories {
		assert.NotEqual(t, fallbackImageURL, DefaultImageURL(c), string(c))
	}
	assert.Equal(t, fallbackImageURL, DefaultImageURL("Gaming"))
}
