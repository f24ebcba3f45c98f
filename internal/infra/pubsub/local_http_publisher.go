package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// localHTTPPublisher posts push envelopes straight to the worker, standing in for a
// Pub/Sub push subscription during development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewLocalHTTPPublisher creates a publisher that delivers to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		now:        time.Now,
	}
}

// PublishNotificationEvent posts event to the worker endpoint.
func (p *localHTTPPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	envelope, err := newPushEnvelope(event, p.now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("worker rejected notification %s with status %d", event.NotificationID, resp.StatusCode)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Notification event delivered to worker",
		slog.String("endpoint", p.endpoint),
		slog.String("notification_id", event.NotificationID),
	)

	return nil
}

// Close is a no-op; the HTTP client holds no per-publisher resources.
func (p *localHTTPPublisher) Close() error {
	return nil
}
