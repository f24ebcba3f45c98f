// Package handler contains the worker's Pub/Sub push handlers.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/service"
	"canteen/internal/errors"
	"canteen/internal/infra/pubsub"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const pushTitle = "Order update"

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// tokenValidator checks a Google-signed OIDC token for audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns notification events into push notifications on the customer's topic.
type PushHandler struct {
	verifyPushAuth  bool
	validate        tokenValidator
	logger          *slog.Logger
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push subscriptions sign their requests.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		validate:        idtoken.Validate,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush acknowledges a push with 200 once handled or known to be unprocessable, and
// answers 503 when delivery may succeed on a later attempt.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			log.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		log.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.Event()
	if err != nil {
		log.Error("[Worker] Dropping malformed notification event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &envelope, event)
	ctx, reqLogger := deliverycontext.Attach(ctx, h.logger, requestID)

	reqLogger.Info("[Worker] Processing notification event",
		slog.String("notification_id", event.NotificationID),
		slog.String("uid", event.UserID),
		slog.String("status", event.Status),
	)

	messageID, err := h.send(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to send push notification",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Push notification sent",
		slog.String("notification_id", event.NotificationID),
		slog.String("message_id", messageID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the event field, then the
// X-Request-Id of the push request, and generates one as a last resort.
func extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.NotificationEvent) string {
	if requestID := envelope.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// send pushes the notification to the customer's topic. Rejected messages are not retried.
func (h *PushHandler) send(ctx context.Context, event *service.NotificationEvent) (string, error) {
	data := map[string]string{
		"notification_id": event.NotificationID,
		"order_id":        event.OrderID,
		"status":          event.Status,
	}

	messageID, err := h.notificationSvc.SendToTopic(ctx, service.UserTopic(event.UserID), pushTitle, event.Message, data)
	if err != nil {
		if isRejected(err) {
			return "", errors.WithStack(err)
		}

		return "", newRetryableError(errors.WithStack(err))
	}

	return messageID, nil
}

// isRejected reports whether FCM refused the message itself, which no retry can fix.
func isRejected(err error) bool {
	return errors.Any(err, func(err error) bool {
		return messaging.IsInvalidArgument(err) || messaging.IsSenderIDMismatch(err) || messaging.IsUnregistered(err)
	})
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
