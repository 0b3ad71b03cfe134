// Package coordinator sequences local state changes with remote confirmation
// and owns the session's view state.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/stpnv0/EventHub/internal/client/filter"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	msgSignInRequired         = "Please sign in first."
	msgAdminOnly              = "This action requires an admin account."
	msgFetchEventsFailed      = "Failed to load events from server"
	msgFetchRegistrationsFail = "Failed to load your registrations"
	msgFetchAttendeesFailed   = "Failed to load attendees."
	msgAlreadyRegistered      = "You are already registered for this event."
	msgEventNotFound          = "Event not found."
)

type catalogStore interface {
	List() []*domain.Event
	Find(id string) (*domain.Event, bool)
	Refresh(ctx context.Context) error
	Create(ctx context.Context, draft domain.EventDraft) error
	Update(ctx context.Context, event *domain.Event) error
	DeleteOne(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Remove(id string) []*domain.Event
	Restore(previous []*domain.Event)
	Reset()
}

type registrationLedger interface {
	ListForUser(ctx context.Context, userID string) (domain.IDSet, error)
	Register(ctx context.Context, userID, eventID string, form domain.RegistrationForm) error
	Attendees(ctx context.Context, eventID string) ([]*domain.Registration, error)
	Has(eventID string) bool
	IDs() domain.IDSet
	Reset()
}

type noticeBoard interface {
	Show(message string)
	Clear()
	Latest() (message string, seq uint64)
}

// State is a read-only copy of the view state.
type State struct {
	User     *domain.User
	View     filter.View
	Category domain.Category
	Query    string
	Loading  bool
	Notice   string
	// NoticeSeq changes every time a notice is shown or cleared.
	NoticeSeq uint64
}

type Coordinator struct {
	catalog catalogStore
	ledger  registrationLedger
	notices noticeBoard
	logger  logger.Logger

	mu       sync.Mutex
	user     *domain.User
	view     filter.View
	category domain.Category
	query    string
	loading  int

	// background work belongs to the session and is cancelled on logout.
	bg       sync.WaitGroup
	bgCtx    context.Context
	bgCancel context.CancelFunc

	// snapshot writers hold session for reading; ending a session takes it for
	// writing, so no write for the old user can land after the reset.
	session sync.RWMutex
}

func New(
	catalog catalogStore,
	ledger registrationLedger,
	notices noticeBoard,
	logger logger.Logger,
) *Coordinator {
	c := &Coordinator{
		catalog:  catalog,
		ledger:   ledger,
		notices:  notices,
		logger:   logger,
		view:     filter.ViewDashboard,
		category: domain.CategoryAll,
	}
	c.bgCtx, c.bgCancel = context.WithCancel(context.Background())
	return c
}

// Login starts a session for user and loads the catalog and the user's registrations.
func (c *Coordinator) Login(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrNotSignedIn
	}

	if previous := c.endSession(); previous != nil {
		c.logger.Info("session ended", logger.String("user_id", previous.ID))
	}

	c.mu.Lock()
	c.user = user
	c.bgCtx, c.bgCancel = context.WithCancel(context.Background())
	c.mu.Unlock()

	c.logger.Info("session started",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)
	c.notices.Show(fmt.Sprintf("Welcome back, %s!", user.Name))

	return c.RefreshAll(ctx)
}

// Logout cancels background work and returns every piece of session state to its default.
func (c *Coordinator) Logout() {
	if user := c.endSession(); user != nil {
		c.logger.Info("session ended", logger.String("user_id", user.ID))
	}
}

// endSession signs the current user out and waits until nothing can write
// their data any more before resetting. It returns the user that was signed in.
func (c *Coordinator) endSession() *domain.User {
	c.mu.Lock()
	cancel := c.bgCancel
	user := c.user
	c.user = nil
	c.mu.Unlock()

	cancel()
	c.bg.Wait()

	c.session.Lock()
	defer c.session.Unlock()

	c.catalog.Reset()
	c.ledger.Reset()
	c.notices.Clear()

	c.mu.Lock()
	c.view = filter.ViewDashboard
	c.category = domain.CategoryAll
	c.query = ""
	c.loading = 0
	c.mu.Unlock()

	return user
}

// Refresh reloads the catalog. A failure keeps the old snapshot and is shown to the user.
func (c *Coordinator) Refresh(ctx context.Context) error {
	return c.refreshCatalog(ctx, true)
}

// RefreshRegistrations reloads the signed-in user's registrations.
func (c *Coordinator) RefreshRegistrations(ctx context.Context) error {
	return c.refreshLedger(ctx, true)
}

func (c *Coordinator) refreshLedger(ctx context.Context, notify bool) error {
	ctx, user, leave := c.enterSession(ctx)
	defer leave()
	if user == nil {
		return nil
	}

	if _, err := c.ledger.ListForUser(ctx, user.ID); err != nil {
		if !notify {
			c.logger.Warn("registrations reconcile failed",
				logger.String("user_id", user.ID),
				logger.String("error", err.Error()),
			)
			return err
		}

		c.logger.Error("failed to load registrations",
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)
		c.notices.Show(msgFetchRegistrationsFail)
		return err
	}
	return nil
}

// RefreshAll reloads the catalog and the registrations. It is a no-op when signed out.
func (c *Coordinator) RefreshAll(ctx context.Context) error {
	if c.currentUser() == nil {
		return nil
	}
	return errors.Join(c.Refresh(ctx), c.RefreshRegistrations(ctx))
}

func (c *Coordinator) Create(ctx context.Context, draft domain.EventDraft) error {
	draft = withDefaultImage(draft)

	return c.run(ctx, mutation{
		kind: opCreate,
		call: func(ctx context.Context, _ *domain.User) error {
			return c.catalog.Create(ctx, draft)
		},
		success: fmt.Sprintf("Event %q created successfully!", draft.Title),
		failure: "Failed to create event.",
	})
}

// Update replaces the editable fields of the event with the given id.
func (c *Coordinator) Update(ctx context.Context, id string, draft domain.EventDraft) error {
	draft = withDefaultImage(draft)

	return c.run(ctx, mutation{
		kind: opUpdate,
		call: func(ctx context.Context, _ *domain.User) error {
			existing, ok := c.catalog.Find(id)
			if !ok {
				return &domain.WriteError{Op: "update", Err: domain.ErrEventNotFound}
			}
			return c.catalog.Update(ctx, existing.WithDraft(draft))
		},
		success: fmt.Sprintf("Event %q updated successfully!", draft.Title),
		failure: "Failed to update event.",
	})
}

func (c *Coordinator) Delete(ctx context.Context, id string) error {
	return c.run(ctx, mutation{
		kind: opDelete,
		apply: func() func() {
			previous := c.catalog.Remove(id)
			return func() { c.catalog.Restore(previous) }
		},
		call: func(ctx context.Context, _ *domain.User) error {
			return c.catalog.DeleteOne(ctx, id)
		},
		success: "Event deleted.",
		failure: "Failed to delete event. Please try again.",
	})
}

func (c *Coordinator) DeleteAll(ctx context.Context) error {
	return c.run(ctx, mutation{
		kind: opDeleteAll,
		call: func(ctx context.Context, _ *domain.User) error {
			return c.catalog.DeleteAll(ctx)
		},
		success: "All events have been deleted.",
		failure: "Failed to delete all events.",
	})
}

// Register signs the current user up for an event. It refuses, without a remote
// call, events that are unknown locally or already in the ledger.
func (c *Coordinator) Register(ctx context.Context, eventID string, form domain.RegistrationForm) error {
	if c.currentUser() != nil {
		if c.ledger.Has(eventID) {
			c.notices.Show(msgAlreadyRegistered)
			return domain.ErrAlreadyRegistered
		}
		if _, ok := c.catalog.Find(eventID); !ok {
			c.notices.Show(msgEventNotFound)
			return domain.ErrEventNotFound
		}
	}

	return c.run(ctx, mutation{
		kind: opRegister,
		call: func(ctx context.Context, user *domain.User) error {
			return c.ledger.Register(ctx, user.ID, eventID, form)
		},
		success: "Successfully registered!",
		failure: "Registration failed. Please try again.",
	})
}

// Attendees lists the registrations of an event. Admin only.
func (c *Coordinator) Attendees(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	user := c.currentUser()
	if user == nil {
		c.notices.Show(msgSignInRequired)
		return nil, domain.ErrNotSignedIn
	}
	if !user.IsAdmin() {
		c.notices.Show(msgAdminOnly)
		return nil, domain.ErrForbidden
	}

	regs, err := c.ledger.Attendees(ctx, eventID)
	if err != nil {
		c.logger.Error("failed to load attendees",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		c.notices.Show(msgFetchAttendeesFailed)
		return nil, err
	}
	return regs, nil
}

// Visible returns the events the current view state selects.
func (c *Coordinator) Visible() []*domain.Event {
	return filter.VisibleEvents(c.catalog.List(), c.ledger.IDs(), c.criteria())
}

// Event looks an event up in the local snapshot.
func (c *Coordinator) Event(id string) (*domain.Event, bool) {
	return c.catalog.Find(id)
}

func (c *Coordinator) Stats() domain.CatalogStats {
	return domain.Summarize(c.catalog.List())
}

func (c *Coordinator) IsRegistered(eventID string) bool {
	return c.ledger.Has(eventID)
}

func (c *Coordinator) SetView(v filter.View) error {
	if _, err := filter.ParseView(string(v)); err != nil {
		return err
	}
	c.mu.Lock()
	c.view = v
	c.mu.Unlock()
	return nil
}

func (c *Coordinator) SetCategory(category domain.Category) error {
	if _, err := domain.ParseCategoryFilter(string(category)); err != nil {
		return err
	}
	c.mu.Lock()
	c.category = category
	c.mu.Unlock()
	return nil
}

func (c *Coordinator) SetQuery(query string) {
	c.mu.Lock()
	c.query = query
	c.mu.Unlock()
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	s := State{
		User:     c.user,
		View:     c.view,
		Category: c.category,
		Query:    c.query,
		Loading:  c.loading > 0,
	}
	c.mu.Unlock()

	s.Notice, s.NoticeSeq = c.notices.Latest()
	return s
}

// Wait blocks until background reconciliation has finished.
func (c *Coordinator) Wait() {
	c.bg.Wait()
}

func (c *Coordinator) currentUser() *domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.user
}

func (c *Coordinator) criteria() filter.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()

	return filter.Criteria{View: c.view, Category: c.category, Query: c.query}
}

func (c *Coordinator) refreshCatalog(ctx context.Context, notify bool) error {
	ctx, user, leave := c.enterSession(ctx)
	defer leave()
	if user == nil {
		return nil
	}

	c.setLoading(1)
	defer c.setLoading(-1)

	if err := c.catalog.Refresh(ctx); err != nil {
		c.logger.Error("failed to load events", logger.String("error", err.Error()))
		if notify {
			c.notices.Show(msgFetchEventsFailed)
		}
		return err
	}
	return nil
}

func (c *Coordinator) setLoading(delta int) {
	c.mu.Lock()
	c.loading = max(c.loading+delta, 0)
	c.mu.Unlock()
}

// enterSession pins the current session until leave is called. The returned
// context also ends with the session. user is nil when nobody is signed in.
// Callers must not nest it.
func (c *Coordinator) enterSession(ctx context.Context) (_ context.Context, user *domain.User, leave func()) {
	c.session.RLock()

	c.mu.Lock()
	user, sessionCtx := c.user, c.bgCtx
	c.mu.Unlock()

	if user == nil {
		c.session.RUnlock()
		return ctx, nil, func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(sessionCtx, cancel)
	return ctx, user, func() {
		stop()
		cancel()
		c.session.RUnlock()
	}
}

// inBackground runs fn on a tracked goroutine bound to the session. It does
// nothing once the session has ended.
func (c *Coordinator) inBackground(fn func(ctx context.Context)) {
	c.mu.Lock()
	if c.user == nil {
		c.mu.Unlock()
		return
	}
	ctx := c.bgCtx
	c.bg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.bg.Done()
		fn(ctx)
	}()
}
