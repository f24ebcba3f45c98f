package repository

import (
	"context"
	"errors"

	"canteen/internal/domain/entity"
)

// ErrMenuItemNotFound is returned when a menu item does not exist.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItems document fields.
const (
	FieldMenuItemID   = "ItemID"
	FieldMenuItemName = "ItemName"
	FieldMenuPrice    = "price"
)

// MenuRepository defines the operations over the MenuItems collection.
type MenuRepository interface {
	Collection[*entity.MenuItem]

	FindByID(ctx context.Context, id string) (*entity.MenuItem, error)

	// Create assigns item.ID when it is empty.
	Create(ctx context.Context, item *entity.MenuItem) error

	Update(ctx context.Context, item *entity.MenuItem) error

	Delete(ctx context.Context, id string) error
}
