package repository

import (
	"context"
	"errors"

	"canteen/internal/domain/entity"
)

var (
	// ErrOrderNotFound is returned when an order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusConflict is returned when a conditional status update finds a non-pending order.
	ErrOrderStatusConflict = errors.New("order is no longer pending")
)

// Orders document fields.
const (
	FieldOrderCode          = "OrderID"
	FieldOrderUserID        = "UserID"
	FieldOrderStatus        = "status"
	FieldOrderIsNotified    = "isNotified"
	FieldOrderTime          = "time"
	FieldOrderPaymentStatus = "PaymentStatus"
)

// OrderRepository defines the operations over the Orders collection.
type OrderRepository interface {
	Collection[*entity.Order]

	// Create assigns order.ID when it is empty.
	Create(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// UpdateStatus moves a pending order into next. Marking an order ready also marks it paid.
	// Returns ErrOrderStatusConflict when the stored order is not pending.
	UpdateStatus(ctx context.Context, id string, next entity.OrderStatus) (*entity.Order, error)

	SetPaymentStatus(ctx context.Context, id string, paid bool) error

	// MarkAnnounced sets isNotified on every listed order in one batched write.
	MarkAnnounced(ctx context.Context, ids []string) error
}
