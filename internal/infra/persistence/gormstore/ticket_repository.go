package gormstore

import (
	"context"
	"time"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ticketColumns = columns{
	repository.FieldTicketUserID:        "user_id",
	repository.FieldTicketStatus:        "status",
	repository.FieldTicketLastUpdatedAt: "last_updated_at",
}

// ticketRepository implements the repository.TicketRepository interface using GORM.
// Conversation messages live in their own append-only table.
type ticketRepository struct {
	db          *gorm.DB
	broadcaster *Broadcaster
}

// NewTicketRepository is the constructor for ticketRepository.
func NewTicketRepository(db *gorm.DB, broadcaster *Broadcaster) repository.TicketRepository {
	return &ticketRepository{db: db, broadcaster: broadcaster}
}

func (repo *ticketRepository) table() string {
	return model.TicketModel{}.TableName()
}

func preloadMessages(db *gorm.DB) *gorm.DB {
	return db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

// List runs q once.
func (repo *ticketRepository) List(ctx context.Context, q repository.Query) ([]*entity.Ticket, error) {
	db, err := ticketColumns.apply(preloadMessages(repo.db.WithContext(ctx).Model(&model.TicketModel{})), q)
	if err != nil {
		return nil, err
	}

	var rows []*model.TicketModel
	if err := db.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	tickets := make([]*entity.Ticket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, toTicketDomain(row))
	}

	return tickets, nil
}

// Watch serves q live.
func (repo *ticketRepository) Watch(ctx context.Context, q repository.Query, onSnapshot func([]*entity.Ticket), onError func(error)) (repository.Registration, error) {
	if _, err := ticketColumns.apply(repo.db, q); err != nil {
		return nil, err
	}

	return watch(ctx, repo.broadcaster, repo.table(), func(ctx context.Context) ([]*entity.Ticket, error) {
		return repo.List(ctx, q)
	}, onSnapshot, onError), nil
}

// Create persists a ticket with its opening messages, assigning its document ID when empty.
func (repo *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}

	if err := repo.db.WithContext(ctx).Create(fromTicketDomain(ticket)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create ticket")
	}
	repo.broadcaster.Notify(repo.table())

	return nil
}

// FindByID retrieves a ticket with its conversation.
func (repo *ticketRepository) FindByID(ctx context.Context, id string) (*entity.Ticket, error) {
	var row model.TicketModel
	if err := preloadMessages(repo.db.WithContext(ctx)).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err, repository.ErrTicketNotFound, "failed to find ticket")
	}

	return toTicketDomain(&row), nil
}

// AppendMessage inserts msg and bumps lastUpdatedAt in one transaction.
func (repo *ticketRepository) AppendMessage(ctx context.Context, id string, msg entity.TicketMessage) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.TicketModel{}).Where("id = ?", id).Update("last_updated_at", msg.Timestamp.UTC())
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to touch ticket")
		}
		if result.RowsAffected == 0 {
			return repository.ErrTicketNotFound
		}

		row := fromTicketMessageDomain(id, msg)
		if err := tx.Create(&row).Error; err != nil {
			return errors.Wrap(err, "failed to append ticket message")
		}

		return nil
	})
	if err != nil {
		return err
	}
	repo.broadcaster.Notify(repo.table())

	return nil
}

// SetStatus changes the ticket status and bumps lastUpdatedAt to at.
func (repo *ticketRepository) SetStatus(ctx context.Context, id string, status entity.TicketStatus, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          string(status),
			"last_updated_at": at.UTC(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ticket status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}
	repo.broadcaster.Notify(repo.table())

	return nil
}

// --- Mapper Functions ---

func toTicketDomain(data *model.TicketModel) *entity.Ticket {
	messages := make([]entity.TicketMessage, 0, len(data.Messages))
	for _, m := range data.Messages {
		messages = append(messages, entity.TicketMessage{
			SenderID:   m.SenderID,
			SenderName: m.SenderName,
			Text:       m.Text,
			Timestamp:  m.Timestamp.UTC(),
		})
	}

	return &entity.Ticket{
		ID:            data.ID,
		UserID:        data.UserID,
		UserName:      data.UserName,
		Subject:       data.Subject,
		Area:          entity.TicketArea(data.Area),
		OrderID:       data.OrderID,
		Status:        entity.TicketStatus(data.Status),
		Messages:      messages,
		CreatedAt:     data.CreatedAt.UTC(),
		LastUpdatedAt: data.LastUpdatedAt.UTC(),
	}
}

func fromTicketDomain(data *entity.Ticket) *model.TicketModel {
	messages := make([]model.TicketMessageModel, 0, len(data.Messages))
	for _, m := range data.Messages {
		messages = append(messages, fromTicketMessageDomain(data.ID, m))
	}

	return &model.TicketModel{
		ID:            data.ID,
		UserID:        data.UserID,
		UserName:      data.UserName,
		Subject:       data.Subject,
		Area:          string(data.Area),
		OrderID:       data.OrderID,
		Status:        string(data.Status),
		Messages:      messages,
		CreatedAt:     data.CreatedAt.UTC(),
		LastUpdatedAt: data.LastUpdatedAt.UTC(),
	}
}

func fromTicketMessageDomain(ticketID string, m entity.TicketMessage) model.TicketMessageModel {
	return model.TicketMessageModel{
		TicketID:   ticketID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		Text:       m.Text,
		Timestamp:  m.Timestamp.UTC(),
	}
}
