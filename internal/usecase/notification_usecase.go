package usecase

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/usecase/live"
	"canteen/internal/usecase/session"
)

// Inbox is the notification list of a customer.
type Inbox struct {
	Items   []entity.Notification `json:"items"` // Most recent first.
	Unread  bool                  `json:"unread"`
	Deriver string                `json:"deriver"` // State of the live order watch.
}

// NotificationUsecase exposes the notifications derived for a session.
type NotificationUsecase interface {
	Inbox(ctx context.Context, s *session.Session) (*Inbox, error)

	// MarkRead clears the unread flag. It is the only way the flag is cleared.
	MarkRead(ctx context.Context, s *session.Session) error

	// StreamInbox renders *Inbox frames whenever the deriver surfaces notifications.
	StreamInbox(ctx context.Context, s *session.Session) live.Feed
}
