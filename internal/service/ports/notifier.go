package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type RegistrationNotifier interface {
	NotifyRegistered(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyEventCancelled(ctx context.Context, user *domain.User, event *domain.Event)
}
