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

type RegistrationService struct {
	registrationRepo ports.RegistrationRepo
	eventRepo        ports.EventRepo
	userRepo         ports.UserRepo
	notifier         ports.RegistrationNotifier
	logger           logger.Logger
}

func NewRegistrationService(
	registrationRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.RegistrationNotifier,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		logger:           logger,
	}
}

func (s *RegistrationService) Register(
	ctx context.Context,
	userID, eventID string,
	form domain.RegistrationForm,
) (*domain.Registration, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	// проверка, что eventID, userID exist
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	reg := &domain.Registration{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		Form:      form,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyRegistered(context.WithoutCancel(ctx), user, event)

	return reg, nil
}

func (s *RegistrationService) ListEventIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.registrationRepo.ListEventIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return ids, nil
}
