package handler

import (
	"context"
	"net/http"

	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/response"
	"canteen/internal/delivery/api/sse"
	"canteen/internal/domain/entity"
	"canteen/internal/usecase"
	"canteen/internal/usecase/live"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createTicketRequest struct {
	Subject     string `json:"subject" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=4000"`
	Area        string `json:"area" validate:"required,oneof=feedback order-query technical"`
	OrderID     string `json:"orderId"`
}

type replyRequest struct {
	Text string `json:"text" validate:"required,max=4000"`
}

type ticketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Open Resolved"`
}

// SupportHandler serves support tickets for customers and admins.
type SupportHandler struct {
	uc       usecase.SupportUsecase
	streamer *sse.Streamer
}

// NewSupportHandler is the constructor for SupportHandler, injected by Fx.
func NewSupportHandler(uc usecase.SupportUsecase, streamer *sse.Streamer) *SupportHandler {
	return &SupportHandler{uc: uc, streamer: streamer}
}

// EligibleOrders lists the orders the caller may reference in a ticket.
func (h *SupportHandler) EligibleOrders(c echo.Context) error {
	orders, err := h.uc.EligibleOrders(c.Request().Context(), middleware.Session(c).UID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// MyTickets lists the caller's tickets.
func (h *SupportHandler) MyTickets(c echo.Context) error {
	tickets, err := h.uc.MyTickets(c.Request().Context(), middleware.Session(c).UID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tickets)
}

// StreamMyTickets streams the caller's tickets.
func (h *SupportHandler) StreamMyTickets(c echo.Context) error {
	s := middleware.Session(c)

	return h.streamer.Serve(c, s, func(ctx context.Context) live.Feed {
		return h.uc.StreamMyTickets(ctx, s.UID())
	})
}

// Create opens a ticket.
func (h *SupportHandler) Create(c echo.Context) error {
	var req createTicketRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ticket, err := h.uc.CreateTicket(c.Request().Context(), middleware.Actor(c), &usecase.CreateTicketInput{
		Subject:     req.Subject,
		Description: req.Description,
		Area:        entity.TicketArea(req.Area),
		OrderID:     req.OrderID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ticket)
}

// Reply appends a message as the caller. Used by both the customer and the admin routes.
func (h *SupportHandler) Reply(c echo.Context) error {
	var req replyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ticket, err := h.uc.Reply(c.Request().Context(), middleware.Actor(c), c.Param("id"), req.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticket)
}

// AllTickets lists every ticket for admins.
func (h *SupportHandler) AllTickets(c echo.Context) error {
	tickets, err := h.uc.AllTickets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tickets)
}

// StreamAllTickets streams every ticket for admins.
func (h *SupportHandler) StreamAllTickets(c echo.Context) error {
	return h.streamer.Serve(c, middleware.Session(c), func(ctx context.Context) live.Feed {
		return h.uc.StreamAllTickets(ctx)
	})
}

// SetStatus opens or resolves a ticket.
func (h *SupportHandler) SetStatus(c echo.Context) error {
	var req ticketStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ticket, err := h.uc.SetTicketStatus(c.Request().Context(), c.Param("id"), entity.TicketStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticket)
}
