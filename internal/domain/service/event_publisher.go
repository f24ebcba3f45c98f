package service

import (
	"context"
)

// NotificationEvent is published for every in-app notification so the worker can fan it out as a push.
type NotificationEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string `json:"notification_id"`      // Order document ID
	UserID         string `json:"user_id"`
	OrderID        string `json:"order_id"` // Human-readable order code
	Status         string `json:"status"`
	Message        string `json:"message"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
