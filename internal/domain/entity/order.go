package entity

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusReady means the kitchen finished the order and it can be picked up.
	OrderStatusReady OrderStatus = "ready"
	// OrderStatusCancelled means the canteen cancelled the order.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderCodePrefix prefixes every human-readable order code.
const OrderCodePrefix = "ORDER_"

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusReady, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusReady || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the order may move from s to next.
// Only pending orders change state, and only into a terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == OrderStatusPending && next.IsTerminal()
}

// TerminalOrderStatuses lists the states a customer gets notified about.
func TerminalOrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusReady, OrderStatusCancelled}
}

// PaymentMethod is the self-declared payment channel chosen at checkout.
type PaymentMethod string

const (
	PaymentMethodGPay    PaymentMethod = "gpay"
	PaymentMethodPhonePe PaymentMethod = "phonepe"
	PaymentMethodPaytm   PaymentMethod = "paytm"
	PaymentMethodOther   PaymentMethod = "other"
)

// IsValid checks if the payment method is supported.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodGPay, PaymentMethodPhonePe, PaymentMethodPaytm, PaymentMethodOther:
		return true
	default:
		return false
	}
}

// OrderItem is a line item copied from the menu at checkout time.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"` // Unit price at checkout.
}

// Subtotal returns price times quantity.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is an Orders document.
type Order struct {
	ID            string        `json:"id"`       // Document ID.
	OrderID       string        `json:"order_id"` // Human-readable code, ORDER_ followed by 9 base-36 characters.
	Items         []OrderItem   `json:"items"`
	UserID        string        `json:"user_id"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus bool          `json:"payment_status"`
	ScheduleLater *time.Time    `json:"schedule_later,omitempty"`
	Status        OrderStatus   `json:"status"`
	IsNotified    bool          `json:"is_notified"`
	Time          time.Time     `json:"time"` // Creation instant.
	Notes         string        `json:"notes,omitempty"`
}

// NeedsAnnouncement reports whether the owner has not yet been told about a terminal state.
func (o *Order) NeedsAnnouncement() bool {
	return o.Status.IsTerminal() && !o.IsNotified
}

// TotalQuantity sums the quantities of all line items.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}

	return total
}
