package usecase

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/usecase/live"
)

// MenuItemInput defines the editable fields of a menu item.
type MenuItemInput struct {
	ItemID      string
	ItemName    string
	Description string
	Price       float64
}

// MenuUsecase defines catalog browsing and administration.
type MenuUsecase interface {
	// ListMenu returns the catalog, filtered by a case-insensitive substring of ItemName when search is set.
	ListMenu(ctx context.Context, search string) ([]*entity.MenuItem, error)

	// StreamMenu renders []*entity.MenuItem frames filtered like ListMenu.
	StreamMenu(ctx context.Context, search string) live.Feed

	CreateMenuItem(ctx context.Context, input *MenuItemInput) (*entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, input *MenuItemInput) (*entity.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
}
