package gormstore

import (
	"context"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var menuColumns = columns{
	repository.FieldMenuItemID:   "item_id",
	repository.FieldMenuItemName: "item_name",
	repository.FieldMenuPrice:    "price",
}

// menuRepository implements the repository.MenuRepository interface using GORM.
type menuRepository struct {
	db          *gorm.DB
	broadcaster *Broadcaster
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB, broadcaster *Broadcaster) repository.MenuRepository {
	return &menuRepository{db: db, broadcaster: broadcaster}
}

func (repo *menuRepository) table() string {
	return model.MenuItemModel{}.TableName()
}

// List runs q once.
func (repo *menuRepository) List(ctx context.Context, q repository.Query) ([]*entity.MenuItem, error) {
	db, err := menuColumns.apply(repo.db.WithContext(ctx).Model(&model.MenuItemModel{}), q)
	if err != nil {
		return nil, err
	}

	var rows []*model.MenuItemModel
	if err := db.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toMenuItemDomain(row))
	}

	return items, nil
}

// Watch serves q live.
func (repo *menuRepository) Watch(ctx context.Context, q repository.Query, onSnapshot func([]*entity.MenuItem), onError func(error)) (repository.Registration, error) {
	if _, err := menuColumns.apply(repo.db, q); err != nil {
		return nil, err
	}

	return watch(ctx, repo.broadcaster, repo.table(), func(ctx context.Context) ([]*entity.MenuItem, error) {
		return repo.List(ctx, q)
	}, onSnapshot, onError), nil
}

// FindByID retrieves a menu item by document ID.
func (repo *menuRepository) FindByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	var row model.MenuItemModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err, repository.ErrMenuItemNotFound, "failed to find menu item")
	}

	return toMenuItemDomain(&row), nil
}

// Create persists a new menu item, assigning its document ID when empty.
func (repo *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	if err := repo.db.WithContext(ctx).Create(fromMenuItemDomain(item)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}
	repo.broadcaster.Notify(repo.table())

	return nil
}

// Update replaces every field of an existing menu item.
func (repo *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"item_id":     item.ItemID,
			"item_name":   item.ItemName,
			"description": item.Description,
			"price":       item.Price,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}
	repo.broadcaster.Notify(repo.table())

	return nil
}

// Delete removes a menu item. Orders keep their copied line items.
func (repo *menuRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}
	repo.broadcaster.Notify(repo.table())

	return nil
}

// --- Mapper Functions ---

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	return &entity.MenuItem{
		ID:          data.ID,
		ItemID:      data.ItemID,
		ItemName:    data.ItemName,
		Description: data.Description,
		Price:       data.Price,
	}
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	return &model.MenuItemModel{
		ID:          data.ID,
		ItemID:      data.ItemID,
		ItemName:    data.ItemName,
		Description: data.Description,
		Price:       data.Price,
	}
}
