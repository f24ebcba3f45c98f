package firestoredb

import (
	"context"
	"log/slog"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

var menuFields = newFields(repository.FieldMenuItemID, repository.FieldMenuItemName, repository.FieldMenuPrice)

type menuRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewMenuRepository creates the MenuItems collection backed by Firestore.
func NewMenuRepository(client *firestore.Client, logger *slog.Logger) repository.MenuRepository {
	return &menuRepository{client: client, logger: logger}
}

func (repo *menuRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(CollectionMenu)
}

func (repo *menuRepository) List(ctx context.Context, q repository.Query) ([]*entity.MenuItem, error) {
	query, empty, err := menuFields.build(repo.collection().Query, q)
	if err != nil || empty {
		return []*entity.MenuItem{}, err
	}

	return list(ctx, query, decodeMenuItem)
}

func (repo *menuRepository) Watch(ctx context.Context, q repository.Query, onSnapshot func([]*entity.MenuItem), onError func(error)) (repository.Registration, error) {
	query, empty, err := menuFields.build(repo.collection().Query, q)
	if err != nil {
		return nil, err
	}

	return watch(ctx, repo.logger, CollectionMenu, query, empty, decodeMenuItem, onSnapshot, onError), nil
}

func (repo *menuRepository) FindByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(err, repository.ErrMenuItemNotFound, "failed to get menu item")
	}

	return decodeMenuItem(snap)
}

func (repo *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	ref := repo.collection().NewDoc()
	if item.ID != "" {
		ref = repo.collection().Doc(item.ID)
	}

	if _, err := ref.Create(ctx, fromMenuItem(item)); err != nil {
		return errors.Wrap(err, "failed to create menu item")
	}
	item.ID = ref.ID

	return nil
}

// Update replaces the stored fields of an existing item.
func (repo *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	doc := fromMenuItem(item)
	_, err := repo.collection().Doc(item.ID).Update(ctx, []firestore.Update{
		{Path: repository.FieldMenuItemID, Value: doc.ItemID},
		{Path: repository.FieldMenuItemName, Value: doc.ItemName},
		{Path: "description", Value: doc.Description},
		{Path: repository.FieldMenuPrice, Value: doc.Price},
	})
	if err != nil {
		return notFound(err, repository.ErrMenuItemNotFound, "failed to update menu item")
	}

	return nil
}

func (repo *menuRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return notFound(err, repository.ErrMenuItemNotFound, "failed to delete menu item")
	}

	return nil
}
