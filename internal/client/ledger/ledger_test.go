package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/EventHub/internal/client/ports/mocks"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestLedger_ListForUser_ReplacesSet(t *testing.T) {
	remote := mocks.NewMockRegistrationRemote(t)
	l := New(remote, newTestLogger(t))

	remote.EXPECT().GetUserRegistrations(mock.Anything, "u1").Return([]string{"e1", "e2"}, nil).Once()

	ids, err := l.ListForUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.NewIDSet("e1", "e2"), ids)
	assert.True(t, l.Has("e1"))
	assert.True(t, l.Has("e2"))

	remote.EXPECT().GetUserRegistrations(mock.Anything, "u1").Return([]string{"e3"}, nil).Once()

	_, err = l.ListForUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.False(t, l.Has("e1"))
	assert.True(t, l.Has("e3"))
}

func TestLedger_ListForUser_FailureKeepsSet(t *testing.T) {
	remote := mocks.NewMockRegistrationRemote(t)
	l := New(remote, newTestLogger(t))

	remote.EXPECT().GetUserRegistrations(mock.Anything, "u1").Return([]string{"e1"}, nil).Once()
	_, err := l.ListForUser(context.Background(), "u1")
	require.NoError(t, err)

	remote.EXPECT().GetUserRegistrations(mock.Anything, "u1").Return(nil, errors.New("timeout")).Once()

	_, err = l.ListForUser(context.Background(), "u1")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.True(t, l.Has("e1"))
}

func TestLedger_Register_DoesNotTouchSet(t *testing.T) {
	remote := mocks.NewMockRegistrationRemote(t)
	l := New(remote, newTestLogger(t))

	form := domain.RegistrationForm{FullName: "Ada", Email: "ada@campus.edu"}
	remote.EXPECT().RegisterForEvent(mock.Anything, "u1", "e1", form).Return(nil)

	require.NoError(t, l.Register(context.Background(), "u1", "e1", form))
	assert.False(t, l.Has("e1"))
}

func TestLedger_Register_Error(t *testing.T) {
	remote := mocks.NewMockRegistrationRemote(t)
	l := New(remote, newTestLogger(t))

	remote.EXPECT().RegisterForEvent(mock.Anything, "u1", "e1", mock.Anything).Return(errors.New("full"))

	err := l.Register(context.Background(), "u1", "e1", domain.RegistrationForm{})

	var writeErr *domain.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "register", writeErr.Op)
}

func TestLedger_Attendees(t *testing.T) {
	remote := mocks.NewMockRegistrationRemote(t)
	l := New(remote, newTestLogger(t))

	regs := []*domain.Registration{{ID: "r1", EventID: "e1", UserID: "u1"}}
	remote.EXPECT().GetEventAttendees(mock.Anything, "e1").Return(regs, nil).Once()

	got, err := l.Attendees(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, regs, got)

	remote.EXPECT().GetEventAttendees(mock.Anything, "e1").Return(nil, errors.New("boom")).Once()

	_, err = l.Attendees(context.Background(), "e1")
	var fetchErr *domain.FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestLedger_IDsIsCopyAndResetClears(t *testing.T) {
	remote := mocks.NewMockRegistrationRemote(t)
	l := New(remote, newTestLogger(t))

	remote.EXPECT().GetUserRegistrations(mock.Anything, "u1").Return([]string{"e1"}, nil)
	_, err := l.ListForUser(context.Background(), "u1")
	require.NoError(t, err)

	ids := l.IDs()
	ids["e9"] = struct{}{}
	assert.False(t, l.Has("e9"))

	l.Reset()
	assert.Empty(t, l.IDs())
	assert.False(t, l.Has("e1"))
}
