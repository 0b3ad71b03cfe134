package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo             ports.EventRepo
	registrationRepo ports.RegistrationRepo
	userRepo         ports.UserRepo
	notifier         ports.RegistrationNotifier
	logger           logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	registrationRepo ports.RegistrationRepo,
	userRepo ports.UserRepo,
	notifier ports.RegistrationNotifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:             repo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		logger:           logger,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := (&domain.Event{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}).WithDraft(draft)

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("title", event.Title),
	)

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// UpdateEvent replaces the editable fields. Capacity may not drop below the
// number of people already registered.
func (s *EventService) UpdateEvent(ctx context.Context, id string, draft domain.EventDraft) (*domain.Event, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if draft.Capacity < existing.Attendees {
		return nil, fmt.Errorf("%w: capacity %d is below the %d registered attendees",
			domain.ErrValidation, draft.Capacity, existing.Attendees)
	}

	updated := existing.WithDraft(draft)
	updated.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated", logger.String("event_id", id))

	return updated, nil
}

// DeleteEvent removes the event and tells its attendees it was cancelled.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	regs, err := s.registrationRepo.ListByEvent(ctx, id)
	if err != nil {
		s.logger.Warn("failed to list attendees before delete",
			logger.String("event_id", id),
			logger.String("error", err.Error()),
		)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", id),
		logger.Int("attendees", len(regs)),
	)

	if len(regs) > 0 {
		go s.notifyCancelled(context.WithoutCancel(ctx), event, regs)
	}

	return nil
}

func (s *EventService) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all events: %w", err)
	}

	s.logger.Info("all events deleted", logger.Int64("count", n))

	return n, nil
}

func (s *EventService) Attendees(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	regs, err := s.registrationRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	return regs, nil
}

func (s *EventService) notifyCancelled(ctx context.Context, event *domain.Event, regs []*domain.Registration) {
	for _, r := range regs {
		user, err := s.userRepo.GetByID(ctx, r.UserID)
		if err != nil {
			s.logger.Error("failed to get user for cancel notification",
				logger.String("user_id", r.UserID),
			)
			continue
		}

		s.notifier.NotifyEventCancelled(ctx, user, event)
	}
}
