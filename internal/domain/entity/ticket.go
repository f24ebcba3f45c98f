package entity

import "time"

// TicketStatus is the state of a support ticket.
type TicketStatus string

const (
	// TicketStatusOpen is the state of a new or reopened ticket.
	TicketStatusOpen TicketStatus = "Open"
	// TicketStatusResolved is the state of a ticket closed by the canteen.
	TicketStatusResolved TicketStatus = "Resolved"
)

// IsValid checks if the status is one of the known values.
func (s TicketStatus) IsValid() bool {
	return s == TicketStatusOpen || s == TicketStatusResolved
}

// Toggled returns the opposite status. Tickets move freely between Open and Resolved.
func (s TicketStatus) Toggled() TicketStatus {
	if s == TicketStatusOpen {
		return TicketStatusResolved
	}

	return TicketStatusOpen
}

// TicketArea is the category a customer picks when raising a ticket.
type TicketArea string

const (
	TicketAreaFeedback   TicketArea = "feedback"
	TicketAreaOrderQuery TicketArea = "order-query"
	TicketAreaTechnical  TicketArea = "technical"
)

// IsValid checks if the area is one of the known categories.
func (a TicketArea) IsValid() bool {
	switch a {
	case TicketAreaFeedback, TicketAreaOrderQuery, TicketAreaTechnical:
		return true
	default:
		return false
	}
}

// TicketMessage is one entry of a ticket conversation. Messages are append-only.
type TicketMessage struct {
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"` // Snapshot of the sender's name at send time.
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// Ticket is a Support document.
type Ticket struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	UserName      string          `json:"user_name"` // Author display name at creation time.
	Subject       string          `json:"subject"`
	Area          TicketArea      `json:"area"`
	OrderID       string          `json:"order_id,omitempty"` // Related order code, if any.
	Status        TicketStatus    `json:"status"`
	Messages      []TicketMessage `json:"messages"`
	CreatedAt     time.Time       `json:"created_at"`
	LastUpdatedAt time.Time       `json:"last_updated_at"`
}
