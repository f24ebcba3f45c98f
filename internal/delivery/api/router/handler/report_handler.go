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

// ReportHandler serves the admin dashboard and payments screens.
type ReportHandler struct {
	uc       usecase.ReportUsecase
	streamer *sse.Streamer
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, streamer *sse.Streamer) *ReportHandler {
	return &ReportHandler{uc: uc, streamer: streamer}
}

// Dashboard returns the aggregated order figures.
func (h *ReportHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// StreamDashboard streams the dashboard, recomputed on every order change.
func (h *ReportHandler) StreamDashboard(c echo.Context) error {
	return h.streamer.Serve(c, middleware.Session(c), func(ctx context.Context) live.Feed {
		return h.uc.StreamDashboard(ctx)
	})
}

// Payments returns the payments summary and rows.
func (h *ReportHandler) Payments(c echo.Context) error {
	payments, err := h.uc.Payments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments)
}

// StreamPayments streams the payments screen.
func (h *ReportHandler) StreamPayments(c echo.Context) error {
	return h.streamer.Serve(c, middleware.Session(c), func(ctx context.Context) live.Feed {
		return h.uc.StreamPayments(ctx)
	})
}
