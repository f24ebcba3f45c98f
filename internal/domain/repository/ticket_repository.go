package repository

import (
	"context"
	"errors"
	"time"

	"canteen/internal/domain/entity"
)

// ErrTicketNotFound is returned when a support ticket does not exist.
var ErrTicketNotFound = errors.New("ticket not found")

// Support document fields.
const (
	FieldTicketUserID        = "UserID"
	FieldTicketStatus        = "status"
	FieldTicketLastUpdatedAt = "lastUpdatedAt"
)

// TicketRepository defines the operations over the Support collection.
type TicketRepository interface {
	Collection[*entity.Ticket]

	// Create assigns ticket.ID when it is empty.
	Create(ctx context.Context, ticket *entity.Ticket) error

	FindByID(ctx context.Context, id string) (*entity.Ticket, error)

	// AppendMessage appends msg to the conversation and bumps lastUpdatedAt to msg.Timestamp.
	AppendMessage(ctx context.Context, id string, msg entity.TicketMessage) error

	SetStatus(ctx context.Context, id string, status entity.TicketStatus, at time.Time) error
}
