package handler

import (
	"context"
	"net/http"

	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/response"
	"canteen/internal/delivery/api/sse"
	"canteen/internal/usecase"
	"canteen/internal/usecase/live"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	uc       usecase.NotificationUsecase
	streamer *sse.Streamer
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, streamer *sse.Streamer) *NotificationHandler {
	return &NotificationHandler{uc: uc, streamer: streamer}
}

// Inbox returns the notifications and the unread flag.
func (h *NotificationHandler) Inbox(c echo.Context) error {
	inbox, err := h.uc.Inbox(c.Request().Context(), middleware.Session(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inbox)
}

// MarkRead acknowledges the inbox.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.uc.MarkRead(c.Request().Context(), middleware.Session(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Stream streams the inbox whenever new notifications surface.
func (h *NotificationHandler) Stream(c echo.Context) error {
	s := middleware.Session(c)

	return h.streamer.Serve(c, s, func(ctx context.Context) live.Feed {
		return h.uc.StreamInbox(ctx, s)
	})
}
