package impl

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"
	"canteen/internal/usecase/live"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	menu   repository.MenuRepository
	logger *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	Menu   repository.MenuRepository
	Logger *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		menu:   params.Menu,
		logger: params.Logger,
	}
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMenu returns the filtered catalog.
func (srv *menuService) ListMenu(ctx context.Context, search string) ([]*entity.MenuItem, error) {
	items, err := srv.menu.List(ctx, repository.NewQuery())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}

	return filterMenu(items, search), nil
}

// StreamMenu follows the catalog.
func (srv *menuService) StreamMenu(ctx context.Context, search string) live.Feed {
	sub := live.Open[*entity.MenuItem](ctx, srv.menu, repository.NewQuery(), live.WithLogger[*entity.MenuItem](srv.log(ctx)))

	return live.Project(sub, func(_ context.Context, items []*entity.MenuItem) ([]*entity.MenuItem, error) {
		return filterMenu(items, search), nil
	})
}

// CreateMenuItem adds an item to the catalog.
func (srv *menuService) CreateMenuItem(ctx context.Context, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	item, err := buildMenuItem(input)
	if err != nil {
		return nil, err
	}

	if err := srv.menu.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create menu item")
	}
	srv.log(ctx).Info("Menu item created", slog.String("id", item.ID), slog.String("itemId", item.ItemID))

	return item, nil
}

// UpdateMenuItem replaces the editable fields of an item.
func (srv *menuService) UpdateMenuItem(ctx context.Context, id string, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	item, err := buildMenuItem(input)
	if err != nil {
		return nil, err
	}
	item.ID = id

	if err := srv.menu.Update(ctx, item); err != nil {
		return nil, mapMenuError(err, "failed to update menu item")
	}

	return item, nil
}

// DeleteMenuItem removes an item. Orders keep their copied line items.
func (srv *menuService) DeleteMenuItem(ctx context.Context, id string) error {
	if err := srv.menu.Delete(ctx, id); err != nil {
		return mapMenuError(err, "failed to delete menu item")
	}
	srv.log(ctx).Info("Menu item deleted", slog.String("id", id))

	return nil
}

func buildMenuItem(input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	name := strings.TrimSpace(input.ItemName)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("item name is required")
	}
	if input.Price < 0 || math.IsNaN(input.Price) || math.IsInf(input.Price, 0) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a non-negative number")
	}

	return &entity.MenuItem{
		ItemID:      strings.TrimSpace(input.ItemID),
		ItemName:    name,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
	}, nil
}

// filterMenu keeps items whose name contains search, ignoring case, ordered by item code.
func filterMenu(items []*entity.MenuItem, search string) []*entity.MenuItem {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]*entity.MenuItem, 0, len(items))
	for _, item := range items {
		if needle == "" || strings.Contains(strings.ToLower(item.ItemName), needle) {
			out = append(out, item)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.MenuItem) int {
		return cmp.Or(cmp.Compare(a.ItemID, b.ItemID), cmp.Compare(a.ItemName, b.ItemName))
	})

	return out
}

func mapMenuError(err error, msg string) error {
	if errors.Is(err, repository.ErrMenuItemNotFound) {
		return errors.Wrap(domainerrors.ErrMenuItemNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
