package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_SignUp_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.SignUp(context.Background(), domain.CreateUserInput{
		Name:     " Asha ",
		Username: "asha",
		Password: "secret1",
		USN:      "1RV22CS001",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, domain.RoleStudent, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
}

func TestUserService_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{"no username", domain.CreateUserInput{Name: "A", Password: "secret1"}},
		{"no name", domain.CreateUserInput{Username: "a", Password: "secret1"}},
		{"short password", domain.CreateUserInput{Name: "A", Username: "a", Password: "123"}},
		{"bad role", domain.CreateUserInput{Name: "A", Username: "a", Password: "secret1", Role: "root"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(mocks.NewMockUserRepo(t), newTestLogger(t))

			_, err := svc.SignUp(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_SignUp_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.SignUp(context.Background(), domain.CreateUserInput{Name: "A", Username: "asha", Password: "secret1"})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestUserService_Login(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	stored := &domain.User{ID: "u1", Username: "asha", PasswordHash: hashed(t, "secret1")}
	repo.EXPECT().GetByUsername(mock.Anything, "asha").Return(stored, nil)

	user, err := svc.Login(context.Background(), "asha", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = svc.Login(context.Background(), "asha", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "ghost", "secret1")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_RepoError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().GetByUsername(mock.Anything, "asha").Return(nil, errors.New("db down"))

	_, err := svc.Login(context.Background(), "asha", "secret1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_EnsureAdmin(t *testing.T) {
	t.Run("creates when missing", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		svc := NewUserService(repo, newTestLogger(t))

		repo.EXPECT().GetByUsername(mock.Anything, "admin").Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "admin" && u.Role == domain.RoleAdmin
		})).Return(nil)

		require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "adminpass"))
	})

	t.Run("keeps existing", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		svc := NewUserService(repo, newTestLogger(t))

		repo.EXPECT().GetByUsername(mock.Anything, "admin").Return(&domain.User{ID: "a1"}, nil)

		require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "adminpass"))
	})

	t.Run("disabled", func(t *testing.T) {
		svc := NewUserService(mocks.NewMockUserRepo(t), newTestLogger(t))

		require.NoError(t, svc.EnsureAdmin(context.Background(), "", ""))
	})
}
