package usecase

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/usecase/analytics"
	"canteen/internal/usecase/live"
)

// --- Input DTOs ---

// CartLine is one menu item and quantity at checkout.
type CartLine struct {
	MenuItemID string
	Quantity   int
}

// PlaceOrderInput defines a checkout.
type PlaceOrderInput struct {
	Items          []CartLine
	PaymentMethod  entity.PaymentMethod
	ScheduleAt     string // Optional pickup time "HH:MM", today in the canteen time zone.
	Notes          string
	IdempotencyKey string // Optional; identical concurrent submissions share one write.
}

// --- Output DTOs ---

// OrderRow is an order with the owner's display name resolved.
type OrderRow struct {
	*entity.Order
	CustomerName string `json:"customer_name"`
}

// MyOrders splits a customer's orders, newest first.
type MyOrders struct {
	Pending []*entity.Order `json:"pending"`
	Past    []*entity.Order `json:"past"`
}

// PendingQueue is the kitchen queue: orders to make now and orders scheduled for later.
type PendingQueue struct {
	Now       []*OrderRow `json:"now"`
	Scheduled []*OrderRow `json:"scheduled"`
}

// OrderUsecase defines checkout, order tracking and the kitchen workflow.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, actor Actor, input *PlaceOrderInput) (*entity.Order, error)

	MyOrders(ctx context.Context, uid string) (*MyOrders, error)

	// StreamMyOrders renders *MyOrders frames.
	StreamMyOrders(ctx context.Context, uid string) live.Feed

	// PickupQR renders the order code as a PNG for the owner or an admin.
	PickupQR(ctx context.Context, actor Actor, orderID string) ([]byte, error)

	// ScanPickup resolves scanned pickup QR content to the order it encodes.
	ScanPickup(ctx context.Context, qrData string) (*OrderRow, error)

	PendingQueue(ctx context.Context) (*PendingQueue, error)

	// StreamPendingQueue renders *PendingQueue frames.
	StreamPendingQueue(ctx context.Context) live.Feed

	// MarkReady moves a pending order to ready and marks it paid.
	MarkReady(ctx context.Context, orderID string) (*entity.Order, error)

	// Cancel moves a pending order to cancelled.
	Cancel(ctx context.Context, orderID string) (*entity.Order, error)

	SetPaymentStatus(ctx context.Context, orderID string, paid bool) error
}

// PaymentsView is the admin payments screen.
type PaymentsView struct {
	Summary analytics.PaymentsSummary `json:"summary"`
	Rows    []*OrderRow               `json:"rows"` // Newest first.
}

// ReportUsecase defines the admin dashboard and payments figures.
type ReportUsecase interface {
	Dashboard(ctx context.Context) (*analytics.Dashboard, error)

	// StreamDashboard renders *analytics.Dashboard frames, recomputed on every order change.
	StreamDashboard(ctx context.Context) live.Feed

	Payments(ctx context.Context) (*PaymentsView, error)

	// StreamPayments renders *PaymentsView frames.
	StreamPayments(ctx context.Context) live.Feed
}
