package gormstore

import (
	"context"
	"time"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create persists a new account. A taken email yields ErrAccountExists.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := repo.db.WithContext(ctx).Create(fromAccountDomain(account)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAccountExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return nil
}

// FindByUID retrieves an account by UID.
func (repo *accountRepository) FindByUID(ctx context.Context, uid string) (*entity.Account, error) {
	return repo.findBy(ctx, "uid = ?", uid)
}

// FindByEmail retrieves an account by its normalized email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findBy(ctx, "email = ?", email)
}

func (repo *accountRepository) findBy(ctx context.Context, cond string, value string) (*entity.Account, error) {
	var row model.AccountModel
	if err := repo.db.WithContext(ctx).Where(cond, value).First(&row).Error; err != nil {
		return nil, notFound(err, repository.ErrAccountNotFound, "failed to find account")
	}

	return toAccountDomain(&row), nil
}

// MarkVerified flags the account's email as verified.
func (repo *accountRepository) MarkVerified(ctx context.Context, uid string) error {
	return repo.update(ctx, uid, map[string]any{"email_verified": true})
}

// SetPassword replaces the hash and revokes older tokens.
func (repo *accountRepository) SetPassword(ctx context.Context, uid, hash string, validAfter time.Time) error {
	return repo.update(ctx, uid, map[string]any{
		"password_hash":      hash,
		"tokens_valid_after": validAfter.UTC(),
	})
}

// RevokeTokens rejects every token issued before validAfter.
func (repo *accountRepository) RevokeTokens(ctx context.Context, uid string, validAfter time.Time) error {
	return repo.update(ctx, uid, map[string]any{"tokens_valid_after": validAfter.UTC()})
}

func (repo *accountRepository) update(ctx context.Context, uid string, updates map[string]any) error {
	result := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Where("uid = ?", uid).Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	return &entity.Account{
		UID:              data.UID,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		DisplayName:      data.DisplayName,
		EmailVerified:    data.EmailVerified,
		TokensValidAfter: data.TokensValidAfter.UTC(),
		CreatedAt:        data.CreatedAt.UTC(),
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		UID:              data.UID,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		DisplayName:      data.DisplayName,
		EmailVerified:    data.EmailVerified,
		TokensValidAfter: data.TokensValidAfter.UTC(),
		CreatedAt:        data.CreatedAt.UTC(),
	}
}
