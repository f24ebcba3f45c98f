package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"canteen/config"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		RequestID:      "req-1",
		NotificationID: "doc1",
		UserID:         "u1",
		OrderID:        "ORDER_ABC123XYZ",
		Status:         "ready",
		Message:        "Order #ORDER_ABC123XYZ is now ready!",
	}
}

func TestLocalHTTPPublisher_DeliversPushEnvelope(t *testing.T) {
	var (
		received PushEnvelope
		header   string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default()).(*localHTTPPublisher)
	publisher.now = func() time.Time { return time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC) }

	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", header)
	assert.Equal(t, "2024-06-01T09:30:00Z", received.Message.PublishTime)
	assert.Equal(t, "u1", received.Message.Attributes["user_id"])

	event, err := received.Event()
	require.NoError(t, err)
	assert.Equal(t, testEvent(), event)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	err := publisher.PublishNotificationEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "503")
}

func TestPushEnvelope_EventRejectsMalformedData(t *testing.T) {
	var envelope PushEnvelope
	envelope.Message.Data = "not base64!"
	_, err := envelope.Event()
	assert.Error(t, err)

	envelope.Message.Data = "e30=" // {}
	_, err = envelope.Event()
	assert.ErrorContains(t, err, "lacks user")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured"},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "pubsub.localEndpoint is required for the local pubsub provider"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: "pubsub.projectId is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "pubsub.topicId is required"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: `unsupported pubsub provider "kafka"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: slog.Default(),
			})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.cfg == nil {
				assert.NoError(t, publisher.PublishNotificationEvent(context.Background(), testEvent()))
			}
		})
	}
}
