package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canteen/config"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/service"
	"canteen/internal/infra/pubsub"
	mockService "canteen/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockService.MockNotificationService) {
	notificationSvc := mockService.NewMockNotificationService(t)
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.Default(),
		NotificationSvc: notificationSvc,
	}), notificationSvc
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(data),
			"attributes": attributes,
			"messageId":  "m-1",
		},
		"subscription": "projects/canteen/subscriptions/worker",
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

var readyEvent = &service.NotificationEvent{
	RequestID:      "req-1",
	NotificationID: "o1-Ready",
	UserID:         "u1",
	OrderID:        "o1",
	Status:         "Ready",
	Message:        "Order #o1 is now ready!",
}

func TestHandlePush_SendsToUserTopic(t *testing.T) {
	h, notificationSvc := createTestPushHandler(t)

	notificationSvc.EXPECT().
		SendToTopic(mock.Anything, "user-u1", pushTitle, "Order #o1 is now ready!", map[string]string{
			"notification_id": "o1-Ready",
			"order_id":        "o1",
			"status":          "Ready",
		}).
		Return("projects/canteen/messages/1", nil).
		Once()

	rec := doPush(h, pushBody(t, readyEvent, nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_SendFailureIsRetried(t *testing.T) {
	h, notificationSvc := createTestPushHandler(t)

	notificationSvc.EXPECT().
		SendToTopic(mock.Anything, "user-u1", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("unavailable")).
		Once()

	rec := doPush(h, pushBody(t, readyEvent, nil), nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"data not base64", `{"message":{"data":"***","messageId":"m-1"}}`},
		{"event without user", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestPushHandler(t)
			body := tt.body
			if body == "" {
				body = pushBody(t, &service.NotificationEvent{NotificationID: "o1-Ready"}, nil)
			}

			rec := doPush(h, body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_VerifiesGoogleToken(t *testing.T) {
	h, notificationSvc := createTestPushHandler(t)
	h.verifyPushAuth = true
	h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "good" {
			return nil, errors.New("bad signature")
		}
		assert.Equal(t, "http://example.com/push", audience)

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	rec := doPush(h, pushBody(t, readyEvent, nil), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doPush(h, pushBody(t, readyEvent, nil), http.Header{"Authorization": {"Bearer forged"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	notificationSvc.EXPECT().
		SendToTopic(mock.Anything, "user-u1", mock.Anything, mock.Anything, mock.Anything).
		Return("projects/canteen/messages/2", nil).
		Once()

	rec = doPush(h, pushBody(t, readyEvent, nil), http.Header{"Authorization": {"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewPushHandler_VerificationOnlyForGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.True(t, h.verifyPushAuth)

	cfg.Env.Env = constants.EnvDevelop
	h = NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.False(t, h.verifyPushAuth)
}

func TestExtractRequestID(t *testing.T) {
	event := &service.NotificationEvent{RequestID: "from-event"}

	tests := []struct {
		name       string
		attributes map[string]string
		event      *service.NotificationEvent
		want       string
	}{
		{"attribute wins", map[string]string{"request_id": "from-attr"}, event, "from-attr"},
		{"event field", nil, event, "from-event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var envelope pubsub.PushEnvelope
			envelope.Message.Attributes = tt.attributes
			assert.Equal(t, tt.want, extractRequestID(context.Background(), &envelope, tt.event))
		})
	}

	generated := extractRequestID(context.Background(), &pubsub.PushEnvelope{}, &service.NotificationEvent{})
	assert.NotEmpty(t, generated)
}
