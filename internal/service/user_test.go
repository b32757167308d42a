package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/mkorchagin/ConsultBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Ensure_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Ensure(context.Background(), 12345, "alice", "Alice Liddell")

	require.NoError(t, err)
	assert.Equal(t, int64(12345), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice Liddell", user.FullName)
}

func TestUserService_Ensure_ZeroID(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.Ensure(context.Background(), 0, "alice", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Ensure_RepoError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Ensure(context.Background(), 12345, "alice", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_GetByID_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	expected := &domain.User{ID: 12345, Username: "alice"}
	repo.EXPECT().GetByID(mock.Anything, int64(12345)).Return(expected, nil)

	user, err := svc.GetByID(context.Background(), 12345)

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetByID(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	users := []*domain.User{{ID: 1}, {ID: 2}}
	repo.EXPECT().List(mock.Anything).Return(users, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
