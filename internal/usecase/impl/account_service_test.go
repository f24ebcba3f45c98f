package impl

import (
	"context"
	"strings"
	"testing"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"
	mockUsecase "canteen/internal/mocks/usecase"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service  usecase.AccountUsecase
	users    *mockRepo.MockUserRepository
	sessions *mockUsecase.MockSessionRegistry
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	sessions := mockUsecase.NewMockSessionRegistry(t)

	return accountServiceFixtures{
		service:  NewAccountService(AccountServiceParams{Users: users, Sessions: sessions, Logger: newDiscardLogger()}),
		users:    users,
		sessions: sessions,
	}
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.users.EXPECT().FindByID(ctx, "u1").Return(nil, repository.ErrUserNotFound).Once()

	_, err := fx.service.GetProfile(ctx, "u1")

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestAccountService_Rename_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.users.EXPECT().UpdateName(ctx, "u1", "Asha K").Return(nil).Once()
	fx.sessions.EXPECT().Refresh(ctx, "u1").Return(errors.New("profile read failed")).Once()
	fx.users.EXPECT().FindByID(ctx, "u1").Return(&entity.UserProfile{ID: "u1", Name: "Asha K"}, nil).Once()

	profile, err := fx.service.Rename(ctx, "u1", "  Asha K  ")

	require.NoError(t, err)
	assert.Equal(t, "Asha K", profile.Name)
}

func TestAccountService_Rename_Validation(t *testing.T) {
	fx := createTestAccountService(t)

	for _, name := range []string{"", "   ", strings.Repeat("x", 101)} {
		_, err := fx.service.Rename(context.Background(), "u1", name)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}
