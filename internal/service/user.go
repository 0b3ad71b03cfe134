package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

type UserService struct {
	repo   ports.UserRepo
	logger logger.Logger
}

func NewUserService(repo ports.UserRepo, logger logger.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// SignUp creates an account. The role defaults to student.
func (s *UserService) SignUp(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Name = strings.TrimSpace(input.Name)

	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	if input.Role == "" {
		input.Role = domain.RoleStudent
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Username:       input.Username,
		Role:           input.Role,
		USN:            input.USN,
		Department:     input.Department,
		TelegramChatID: input.TelegramChatID,
		PasswordHash:   string(hash),
		CreatedAt:      time.Now().UTC(),
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user created",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)

	return user, nil
}

// Login checks the credentials. Unknown users and wrong passwords both yield
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("get admin: %w", err)
	}

	if _, err = s.SignUp(ctx, domain.CreateUserInput{
		Name:     "Administrator",
		Username: username,
		Password: password,
		Role:     domain.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	s.logger.Info("admin account created", logger.String("username", username))
	return nil
}
