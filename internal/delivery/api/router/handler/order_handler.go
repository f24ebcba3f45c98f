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

// HeaderIdempotencyKey lets a client mark retries of one checkout.
const HeaderIdempotencyKey = "Idempotency-Key"

type cartLineRequest struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"min=1"`
}

type placeOrderRequest struct {
	Items         []cartLineRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"paymentMethod" validate:"required,oneof=gpay phonepe paytm other"`
	ScheduleAt    string            `json:"scheduleAt"`
	Notes         string            `json:"notes" validate:"max=500"`
}

type paymentRequest struct {
	Paid *bool `json:"paid" validate:"required"`
}

type scanRequest struct {
	Data string `json:"data" validate:"required"`
}

// OrderHandler serves checkout, order tracking and the kitchen queue.
type OrderHandler struct {
	uc       usecase.OrderUsecase
	streamer *sse.Streamer
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, streamer *sse.Streamer) *OrderHandler {
	return &OrderHandler{uc: uc, streamer: streamer}
}

// Place checks out the cart.
func (h *OrderHandler) Place(c echo.Context) error {
	var req placeOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	lines := make([]usecase.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, usecase.CartLine{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), middleware.Actor(c), &usecase.PlaceOrderInput{
		Items:          lines,
		PaymentMethod:  entity.PaymentMethod(req.PaymentMethod),
		ScheduleAt:     req.ScheduleAt,
		Notes:          req.Notes,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// Mine returns the caller's orders split into pending and past.
func (h *OrderHandler) Mine(c echo.Context) error {
	orders, err := h.uc.MyOrders(c.Request().Context(), middleware.Session(c).UID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// StreamMine streams the caller's orders.
func (h *OrderHandler) StreamMine(c echo.Context) error {
	s := middleware.Session(c)

	return h.streamer.Serve(c, s, func(ctx context.Context) live.Feed {
		return h.uc.StreamMyOrders(ctx, s.UID())
	})
}

// QRCode renders the pickup QR code of an order as PNG.
func (h *OrderHandler) QRCode(c echo.Context) error {
	png, err := h.uc.PickupQR(c.Request().Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Scan resolves a scanned pickup code to its order.
func (h *OrderHandler) Scan(c echo.Context) error {
	var req scanRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	row, err := h.uc.ScanPickup(c.Request().Context(), req.Data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, row)
}

// Pending returns the kitchen queue.
func (h *OrderHandler) Pending(c echo.Context) error {
	queue, err := h.uc.PendingQueue(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, queue)
}

// StreamPending streams the kitchen queue.
func (h *OrderHandler) StreamPending(c echo.Context) error {
	return h.streamer.Serve(c, middleware.Session(c), func(ctx context.Context) live.Feed {
		return h.uc.StreamPendingQueue(ctx)
	})
}

// MarkReady completes a pending order.
func (h *OrderHandler) MarkReady(c echo.Context) error {
	order, err := h.uc.MarkReady(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Cancel cancels a pending order.
func (h *OrderHandler) Cancel(c echo.Context) error {
	order, err := h.uc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// SetPayment sets the manual payment flag.
func (h *OrderHandler) SetPayment(c echo.Context) error {
	var req paymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.uc.SetPaymentStatus(c.Request().Context(), c.Param("id"), *req.Paid); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
