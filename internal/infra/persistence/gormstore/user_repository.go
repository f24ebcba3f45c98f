package gormstore

import (
	"context"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var userColumns = columns{
	repository.FieldUserName:       "name",
	repository.FieldUserAdminCheck: "admin_check",
}

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db          *gorm.DB
	broadcaster *Broadcaster
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB, broadcaster *Broadcaster) repository.UserRepository {
	return &userRepository{db: db, broadcaster: broadcaster}
}

func (repo *userRepository) table() string {
	return model.UserModel{}.TableName()
}

// List runs q once.
func (repo *userRepository) List(ctx context.Context, q repository.Query) ([]*entity.UserProfile, error) {
	db, err := userColumns.apply(repo.db.WithContext(ctx).Model(&model.UserModel{}), q)
	if err != nil {
		return nil, err
	}

	var rows []*model.UserModel
	if err := db.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	profiles := make([]*entity.UserProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, toUserDomain(row))
	}

	return profiles, nil
}

// Watch serves q live.
func (repo *userRepository) Watch(ctx context.Context, q repository.Query, onSnapshot func([]*entity.UserProfile), onError func(error)) (repository.Registration, error) {
	if _, err := userColumns.apply(repo.db, q); err != nil {
		return nil, err
	}

	return watch(ctx, repo.broadcaster, repo.table(), func(ctx context.Context) ([]*entity.UserProfile, error) {
		return repo.List(ctx, q)
	}, onSnapshot, onError), nil
}

// FindByID retrieves a single profile by UID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	var row model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "failed to find user by id")
	}

	return toUserDomain(&row), nil
}

// FindByIDs retrieves the existing profiles among ids.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*entity.UserProfile, error) {
	profiles := make(map[string]*entity.UserProfile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	var rows []*model.UserModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}
	for _, row := range rows {
		profiles[row.ID] = toUserDomain(row)
	}

	return profiles, nil
}

// Create writes a new profile.
func (repo *userRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	if profile.ID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("profile id is required")
	}

	if err := repo.db.WithContext(ctx).Create(fromUserDomain(profile)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(domainerrors.ErrConflict, "profile %s already exists", profile.ID)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}
	repo.broadcaster.Notify(repo.table())

	return nil
}

// UpdateName changes only the display name.
func (repo *userRepository) UpdateName(ctx context.Context, id, name string) error {
	return repo.update(ctx, id, "name", name)
}

// SetAdmin changes only the privileged flag.
func (repo *userRepository) SetAdmin(ctx context.Context, id string, admin bool) error {
	return repo.update(ctx, id, "admin_check", admin)
}

func (repo *userRepository) update(ctx context.Context, id, column string, value any) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}
	repo.broadcaster.Notify(repo.table())

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.UserProfile {
	return &entity.UserProfile{
		ID:         data.ID,
		Name:       data.Name,
		AdminCheck: data.AdminCheck,
	}
}

func fromUserDomain(data *entity.UserProfile) *model.UserModel {
	return &model.UserModel{
		ID:         data.ID,
		Name:       data.Name,
		AdminCheck: data.AdminCheck,
	}
}
