// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	"canteen/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
)

// messageSender is the subset of *messaging.Client used to deliver pushes.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(client *messaging.Client) service.NotificationService {
	return &firebaseService{
		client: client,
	}
}

// SendToTopic sends a push notification to every device subscribed to topic
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) (string, error) {
	if topic == "" {
		return "", fmt.Errorf("topic is required")
	}

	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send notification to topic %s: %w", topic, err)
	}

	return messageID, nil
}
