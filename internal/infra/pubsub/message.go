package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"canteen/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/notification-push"

// PushEnvelope is the body Pub/Sub sends to a push subscription endpoint.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Event decodes the notification event carried by the envelope.
func (e *PushEnvelope) Event() (*service.NotificationEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse notification event")
	}
	if event.UserID == "" || event.NotificationID == "" {
		return nil, errors.New("notification event lacks user or notification id")
	}

	return &event, nil
}

// newPushEnvelope wraps event the way a push subscription would deliver it.
func newPushEnvelope(event *service.NotificationEvent, publishedAt time.Time) (*PushEnvelope, error) {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	envelope := &PushEnvelope{Subscription: localSubscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = event.NotificationID + "-" + event.Status
	envelope.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return envelope, nil
}

// encodeEvent serializes event and derives the attributes used for filtering and tracing.
func encodeEvent(event *service.NotificationEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"notification_id": event.NotificationID,
		"user_id":         event.UserID,
		"status":          event.Status,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
