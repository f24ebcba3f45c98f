package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"
	mockService "canteen/internal/mocks/service"
	mockUsecase "canteen/internal/mocks/usecase"
	"canteen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedFile(t *testing.T) {
	items, err := loadSeedFile(filepath.Join("testdata", "menu.yaml"))
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, seedItem{ItemID: "V01", ItemName: "Veg Thali", Description: "Rice, dal, two sabzis and roti", Price: 80}, items[0])
	assert.Empty(t, items[2].Description)

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("items: []\n"), 0o600))
	_, err = loadSeedFile(empty)
	assert.ErrorContains(t, err, "no items")

	missingID := filepath.Join(dir, "missing.yaml")
	require.NoError(t, os.WriteFile(missingID, []byte("items:\n  - itemName: Tea\n    price: 10\n"), 0o600))
	_, err = loadSeedFile(missingID)
	assert.ErrorContains(t, err, "item 1 has no itemId")

	_, err = loadSeedFile(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestSeedMenu_UpsertsByItemID(t *testing.T) {
	ctx := context.Background()
	menu := mockUsecase.NewMockMenuUsecase(t)

	menu.EXPECT().ListMenu(ctx, "").Return([]*entity.MenuItem{
		{ID: "doc-1", ItemID: "V01", ItemName: "Old Thali", Price: 70},
	}, nil).Once()
	menu.EXPECT().
		UpdateMenuItem(ctx, "doc-1", &usecase.MenuItemInput{ItemID: "V01", ItemName: "Veg Thali", Price: 80}).
		Return(&entity.MenuItem{ID: "doc-1"}, nil).
		Once()
	menu.EXPECT().
		CreateMenuItem(ctx, &usecase.MenuItemInput{ItemID: "B01", ItemName: "Filter Coffee", Price: 20}).
		Return(&entity.MenuItem{ID: "doc-2"}, nil).
		Once()

	var out bytes.Buffer
	err := seedMenu(ctx, &out, menu, []seedItem{
		{ItemID: "V01", ItemName: "Veg Thali", Price: 80},
		{ItemID: " B01 ", ItemName: "Filter Coffee", Price: 20},
	})
	require.NoError(t, err)
	assert.Equal(t, "menu seeded: 1 created, 1 updated\n", out.String())
}

func TestSeedMenu_StopsOnInvalidItem(t *testing.T) {
	ctx := context.Background()
	menu := mockUsecase.NewMockMenuUsecase(t)

	menu.EXPECT().ListMenu(ctx, "").Return(nil, nil).Once()
	menu.EXPECT().
		CreateMenuItem(ctx, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("item name is required")).
		Once()

	err := seedMenu(ctx, &bytes.Buffer{}, menu, []seedItem{{ItemID: "X01"}, {ItemID: "X02", ItemName: "Never reached"}})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSetAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("grants", func(t *testing.T) {
		provider := mockService.NewMockIdentityProvider(t)
		users := mockRepo.NewMockUserRepository(t)

		provider.EXPECT().LookupByEmail(ctx, "chef@example.com").Return(&entity.Identity{UID: "a1"}, nil).Once()
		users.EXPECT().FindByID(ctx, "a1").Return(&entity.UserProfile{ID: "a1", Name: "Chef"}, nil).Once()
		users.EXPECT().SetAdmin(ctx, "a1", true).Return(nil).Once()

		var out bytes.Buffer
		require.NoError(t, setAdmin(ctx, &out, provider, users, "chef@example.com", true))
		assert.Contains(t, out.String(), "now has admin=true")
	})

	t.Run("already set", func(t *testing.T) {
		provider := mockService.NewMockIdentityProvider(t)
		users := mockRepo.NewMockUserRepository(t)

		provider.EXPECT().LookupByEmail(ctx, "chef@example.com").Return(&entity.Identity{UID: "a1"}, nil).Once()
		users.EXPECT().FindByID(ctx, "a1").Return(&entity.UserProfile{ID: "a1", AdminCheck: true}, nil).Once()

		var out bytes.Buffer
		require.NoError(t, setAdmin(ctx, &out, provider, users, "chef@example.com", true))
		assert.Contains(t, out.String(), "already has admin=true")
	})

	t.Run("no profile", func(t *testing.T) {
		provider := mockService.NewMockIdentityProvider(t)
		users := mockRepo.NewMockUserRepository(t)

		provider.EXPECT().LookupByEmail(ctx, "new@example.com").Return(&entity.Identity{UID: "n1"}, nil).Once()
		users.EXPECT().FindByID(ctx, "n1").Return(nil, repository.ErrUserNotFound).Once()

		err := setAdmin(ctx, &bytes.Buffer{}, provider, users, "new@example.com", false)
		assert.ErrorContains(t, err, "has no profile yet")
	})

	t.Run("unknown account", func(t *testing.T) {
		provider := mockService.NewMockIdentityProvider(t)
		users := mockRepo.NewMockUserRepository(t)

		provider.EXPECT().LookupByEmail(ctx, "ghost@example.com").Return(nil, domainerrors.ErrAccountNotFound).Once()

		err := setAdmin(ctx, &bytes.Buffer{}, provider, users, "ghost@example.com", true)
		assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})
}

func TestRootCommand_RequiresFlags(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"admin", "grant"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	assert.ErrorContains(t, err, `required flag(s) "email" not set`)
}
