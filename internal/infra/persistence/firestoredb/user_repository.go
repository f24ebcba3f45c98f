package firestoredb

import (
	"context"
	"log/slog"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

var userFields = newFields(repository.FieldUserName, repository.FieldUserAdminCheck)

type userRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewUserRepository creates the Users collection backed by Firestore.
func NewUserRepository(client *firestore.Client, logger *slog.Logger) repository.UserRepository {
	return &userRepository{client: client, logger: logger}
}

func (repo *userRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(CollectionUsers)
}

func (repo *userRepository) List(ctx context.Context, q repository.Query) ([]*entity.UserProfile, error) {
	query, empty, err := userFields.build(repo.collection().Query, q)
	if err != nil || empty {
		return []*entity.UserProfile{}, err
	}

	return list(ctx, query, decodeUser)
}

func (repo *userRepository) Watch(ctx context.Context, q repository.Query, onSnapshot func([]*entity.UserProfile), onError func(error)) (repository.Registration, error) {
	query, empty, err := userFields.build(repo.collection().Query, q)
	if err != nil {
		return nil, err
	}

	return watch(ctx, repo.logger, CollectionUsers, query, empty, decodeUser, onSnapshot, onError), nil
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "failed to get user")
	}

	return decodeUser(snap)
}

// FindByIDs fetches every listed profile in one round trip. Missing documents are skipped.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*entity.UserProfile, error) {
	profiles := make(map[string]*entity.UserProfile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, repo.collection().Doc(id))
	}

	snaps, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get users")
	}
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		profile, err := decodeUser(snap)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode user %s", snap.Ref.ID)
		}
		profiles[profile.ID] = profile
	}

	return profiles, nil
}

func (repo *userRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	if profile.ID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("profile id is required")
	}

	_, err := repo.collection().Doc(profile.ID).Create(ctx, userDoc{Name: profile.Name, AdminCheck: profile.AdminCheck})
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Wrapf(domainerrors.ErrConflict, "profile %s already exists", profile.ID)
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) UpdateName(ctx context.Context, id, name string) error {
	return repo.update(ctx, id, repository.FieldUserName, name)
}

func (repo *userRepository) SetAdmin(ctx context.Context, id string, admin bool) error {
	return repo.update(ctx, id, repository.FieldUserAdminCheck, admin)
}

func (repo *userRepository) update(ctx context.Context, id, field string, value any) error {
	_, err := repo.collection().Doc(id).Update(ctx, []firestore.Update{{Path: field, Value: value}})
	if err != nil {
		return notFound(err, repository.ErrUserNotFound, "failed to update user")
	}

	return nil
}
