// Package ledger tracks which events the signed-in user is registered for.
package ledger

import (
	"context"
	"sync"

	"github.com/stpnv0/EventHub/internal/client/ports"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Ledger owns the registered event-id set of the current user. Registrations are
// append-only from the client's point of view; there is no local removal.
type Ledger struct {
	mu     sync.RWMutex
	ids    domain.IDSet
	remote ports.RegistrationRemote
	logger logger.Logger
}

func New(remote ports.RegistrationRemote, logger logger.Logger) *Ledger {
	return &Ledger{
		ids:    domain.NewIDSet(),
		remote: remote,
		logger: logger,
	}
}

// ListForUser fetches the user's registrations and replaces the local set with them.
// On failure the previous set is kept.
func (l *Ledger) ListForUser(ctx context.Context, userID string) (domain.IDSet, error) {
	ids, err := l.remote.GetUserRegistrations(ctx, userID)
	if err != nil {
		return nil, &domain.FetchError{Op: "registrations", Err: err}
	}

	set := domain.NewIDSet(ids...)

	l.mu.Lock()
	l.ids = set
	l.mu.Unlock()

	l.logger.Debug("registrations refreshed",
		logger.String("user_id", userID),
		logger.Int("count", len(set)),
	)

	return set.Clone(), nil
}

// Register submits a registration. Duplicate prevention is left to the remote
// store and to the caller; the local set only changes on the next ListForUser.
func (l *Ledger) Register(ctx context.Context, userID, eventID string, form domain.RegistrationForm) error {
	if err := l.remote.RegisterForEvent(ctx, userID, eventID, form); err != nil {
		return &domain.WriteError{Op: "register", Err: err}
	}
	return nil
}

// Attendees reads the registrations of one event. The result is not cached.
func (l *Ledger) Attendees(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	regs, err := l.remote.GetEventAttendees(ctx, eventID)
	if err != nil {
		return nil, &domain.FetchError{Op: "attendees", Err: err}
	}
	return regs, nil
}

func (l *Ledger) Has(eventID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.ids.Has(eventID)
}

func (l *Ledger) IDs() domain.IDSet {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.ids.Clone()
}

func (l *Ledger) Reset() {
	l.mu.Lock()
	l.ids = domain.NewIDSet()
	l.mu.Unlock()
}
