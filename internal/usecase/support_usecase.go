package usecase

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/usecase/live"
)

// CreateTicketInput defines a new support ticket.
type CreateTicketInput struct {
	Subject     string
	Description string
	Area        entity.TicketArea
	OrderID     string // Optional order code; must be one of the caller's ready or cancelled orders.
}

// TicketRow is a ticket with the owner's current display name resolved.
type TicketRow struct {
	*entity.Ticket
	CustomerName string `json:"customer_name"`
}

// SupportUsecase defines the support conversation between customers and admins.
type SupportUsecase interface {
	// EligibleOrders lists the caller's ready or cancelled orders, newest first.
	EligibleOrders(ctx context.Context, uid string) ([]*entity.Order, error)

	CreateTicket(ctx context.Context, actor Actor, input *CreateTicketInput) (*entity.Ticket, error)

	// MyTickets lists the caller's tickets by last activity, newest first.
	MyTickets(ctx context.Context, uid string) ([]*entity.Ticket, error)

	// StreamMyTickets renders []*entity.Ticket frames.
	StreamMyTickets(ctx context.Context, uid string) live.Feed

	// Reply appends a message. Owners may not reply to resolved tickets; admins may reply to any ticket.
	Reply(ctx context.Context, actor Actor, ticketID, text string) (*entity.Ticket, error)

	AllTickets(ctx context.Context) ([]*TicketRow, error)

	// StreamAllTickets renders []*TicketRow frames.
	StreamAllTickets(ctx context.Context) live.Feed

	SetTicketStatus(ctx context.Context, ticketID string, status entity.TicketStatus) (*entity.Ticket, error)
}
