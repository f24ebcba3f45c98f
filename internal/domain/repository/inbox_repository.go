package repository

import (
	"context"

	"canteen/internal/domain/entity"
)

// InboxRepository stores the per-user list of derived notifications and its unread flag.
type InboxRepository interface {
	// Add inserts notes, replacing entries with the same ID, keeps the list most recent first
	// and raises the unread flag.
	Add(ctx context.Context, uid string, notes []entity.Notification) error

	// List returns the notifications, most recent first, and the unread flag.
	List(ctx context.Context, uid string) ([]entity.Notification, bool, error)

	// MarkRead clears the unread flag.
	MarkRead(ctx context.Context, uid string) error

	// Clear drops every stored notification of uid.
	Clear(ctx context.Context, uid string) error
}
