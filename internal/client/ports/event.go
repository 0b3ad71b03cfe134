package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

// EventRemote is the event half of the remote collaborator.
type EventRemote interface {
	GetEvents(ctx context.Context) ([]*domain.Event, error)
	CreateEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error)
	UpdateEvent(ctx context.Context, event *domain.Event) error
	DeleteEvent(ctx context.Context, id string) error
	DeleteAllEvents(ctx context.Context) error
}
