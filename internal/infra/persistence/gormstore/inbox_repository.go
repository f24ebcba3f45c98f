package gormstore

import (
	"context"
	"time"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultInboxMaxItems = 50

// inboxRepository keeps derived notifications in the local database so they survive restarts.
type inboxRepository struct {
	db       *gorm.DB
	maxItems int
}

// NewInboxRepository is the constructor for inboxRepository. maxItems bounds each user's list.
func NewInboxRepository(db *gorm.DB, maxItems int) repository.InboxRepository {
	if maxItems <= 0 {
		maxItems = defaultInboxMaxItems
	}

	return &inboxRepository{db: db, maxItems: maxItems}
}

// Add upserts notes, trims the list to the newest maxItems entries and raises the unread flag.
func (repo *inboxRepository) Add(ctx context.Context, uid string, notes []entity.Notification) error {
	if len(notes) == 0 {
		return nil
	}

	rows := make([]model.InboxNotificationModel, 0, len(notes))
	for _, note := range notes {
		rows = append(rows, fromNotificationDomain(uid, note))
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"order_id", "status", "message", "created_at"}),
		}).Create(&rows).Error; err != nil {
			return err
		}

		keep := tx.Model(&model.InboxNotificationModel{}).
			Select("id").
			Where("user_id = ?", uid).
			Order("created_at DESC").
			Order("id ASC").
			Limit(repo.maxItems)
		if err := tx.Where("user_id = ? AND id NOT IN (?)", uid, keep).
			Delete(&model.InboxNotificationModel{}).Error; err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"unread", "updated_at"}),
		}).Create(&model.InboxStateModel{UserID: uid, Unread: true, UpdatedAt: time.Now().UTC()}).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add notifications")
	}

	return nil
}

// List returns the stored notifications, most recent first, and the unread flag.
func (repo *inboxRepository) List(ctx context.Context, uid string) ([]entity.Notification, bool, error) {
	db := repo.db.WithContext(ctx)

	var rows []model.InboxNotificationModel
	if err := db.Where("user_id = ?", uid).
		Order("created_at DESC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to list notifications")
	}

	var states []model.InboxStateModel
	if err := db.Where("user_id = ?", uid).Limit(1).Find(&states).Error; err != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to read inbox state")
	}

	notes := make([]entity.Notification, 0, len(rows))
	for i := range rows {
		notes = append(notes, toNotificationDomain(&rows[i]))
	}

	return notes, len(states) == 1 && states[0].Unread, nil
}

// MarkRead clears the unread flag.
func (repo *inboxRepository) MarkRead(ctx context.Context, uid string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.InboxStateModel{}).
		Where("user_id = ?", uid).
		Updates(map[string]any{"unread": false, "updated_at": time.Now().UTC()}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark inbox read")
	}

	return nil
}

// Clear drops every stored notification of uid together with its unread flag.
func (repo *inboxRepository) Clear(ctx context.Context, uid string) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", uid).Delete(&model.InboxNotificationModel{}).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", uid).Delete(&model.InboxStateModel{}).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear inbox")
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.InboxNotificationModel) entity.Notification {
	return entity.Notification{
		ID:        data.ID,
		OrderID:   data.OrderID,
		Status:    entity.OrderStatus(data.Status),
		Message:   data.Message,
		CreatedAt: data.CreatedAt.UTC(),
	}
}

func fromNotificationDomain(uid string, data entity.Notification) model.InboxNotificationModel {
	return model.InboxNotificationModel{
		UserID:    uid,
		ID:        data.ID,
		OrderID:   data.OrderID,
		Status:    string(data.Status),
		Message:   data.Message,
		CreatedAt: data.CreatedAt.UTC(),
	}
}
