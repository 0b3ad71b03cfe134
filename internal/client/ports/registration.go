package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

// RegistrationRemote is the registration half of the remote collaborator.
type RegistrationRemote interface {
	GetUserRegistrations(ctx context.Context, userID string) ([]string, error)
	RegisterForEvent(ctx context.Context, userID, eventID string, form domain.RegistrationForm) error
	GetEventAttendees(ctx context.Context, eventID string) ([]*domain.Registration, error)
}
