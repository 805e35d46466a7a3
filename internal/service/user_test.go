package service

import (
	"context"
	"testing"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	chatID := int64(123456789)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username:       "alice",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	require.NotNil(t, user.TelegramChatID)
	assert.Equal(t, chatID, *user.TelegramChatID)
}

func TestUserService_Create_MissingUsername(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_List(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	users := []*domain.User{{ID: "u1", Username: "alice"}}
	repo.EXPECT().List(mock.Anything).Return(users, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
