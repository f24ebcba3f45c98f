package entity

import (
	"fmt"
	"time"
)

// Notification is an in-app message derived from an order reaching a terminal state.
// It is keyed by the order document ID so repeated derivations collapse into one entry.
type Notification struct {
	ID        string      `json:"id"`       // Order document ID.
	OrderID   string      `json:"order_id"` // Human-readable order code.
	Status    OrderStatus `json:"status"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewOrderNotification builds the notification announcing the order's current status.
func NewOrderNotification(order *Order, now time.Time) Notification {
	return Notification{
		ID:        order.ID,
		OrderID:   order.OrderID,
		Status:    order.Status,
		Message:   fmt.Sprintf("Order #%s is now %s!", order.OrderID, order.Status),
		CreatedAt: now,
	}
}
