package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type RegistrationRepo interface {
	Create(ctx context.Context, reg *domain.Registration) error
	ListEventIDsByUser(ctx context.Context, userID string) ([]string, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error)
}
