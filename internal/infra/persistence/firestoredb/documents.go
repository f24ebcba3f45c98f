package firestoredb

import (
	"time"

	"canteen/internal/domain/entity"

	"cloud.google.com/go/firestore"
)

// Document layouts. Field names are shared with the web clients reading the same project.

type userDoc struct {
	Name       string `firestore:"Name"`
	AdminCheck bool   `firestore:"AdminCheck"`
}

type menuItemDoc struct {
	ItemID      string  `firestore:"ItemID"`
	ItemName    string  `firestore:"ItemName"`
	Description string  `firestore:"description"`
	Price       float64 `firestore:"price"`
}

type orderItemDoc struct {
	Name     string  `firestore:"name"`
	Quantity int     `firestore:"quantity"`
	Price    float64 `firestore:"price"`
}

type orderDoc struct {
	OrderID       string         `firestore:"OrderID"`
	OrderItems    []orderItemDoc `firestore:"OrderItems"`
	UserID        string         `firestore:"UserID"`
	Amount        float64        `firestore:"Amount"`
	PaymentMethod string         `firestore:"PaymentMethod"`
	PaymentStatus bool           `firestore:"PaymentStatus"`
	ScheduleLater *time.Time     `firestore:"ScheduleLater"`
	Status        string         `firestore:"status"`
	IsNotified    bool           `firestore:"isNotified"`
	Time          time.Time      `firestore:"time"`
	Notes         string         `firestore:"Notes"`
}

type ticketMessageDoc struct {
	Text       string    `firestore:"text"`
	SenderID   string    `firestore:"senderId"`
	SenderName string    `firestore:"senderName"`
	Timestamp  time.Time `firestore:"timestamp"`
}

type ticketDoc struct {
	UserID        string             `firestore:"UserID"`
	UserName      string             `firestore:"userName"`
	Area          string             `firestore:"area"`
	Subject       string             `firestore:"subject"`
	OrderID       string             `firestore:"orderId,omitempty"`
	Status        string             `firestore:"status"`
	Messages      []ticketMessageDoc `firestore:"messages"`
	CreatedAt     time.Time          `firestore:"createdAt"`
	LastUpdatedAt time.Time          `firestore:"lastUpdatedAt"`
}

// --- Mapper Functions ---

func decodeUser(snap *firestore.DocumentSnapshot) (*entity.UserProfile, error) {
	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return &entity.UserProfile{ID: snap.Ref.ID, Name: doc.Name, AdminCheck: doc.AdminCheck}, nil
}

func decodeMenuItem(snap *firestore.DocumentSnapshot) (*entity.MenuItem, error) {
	var doc menuItemDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return &entity.MenuItem{
		ID:          snap.Ref.ID,
		ItemID:      doc.ItemID,
		ItemName:    doc.ItemName,
		Description: doc.Description,
		Price:       doc.Price,
	}, nil
}

func fromMenuItem(item *entity.MenuItem) menuItemDoc {
	return menuItemDoc{
		ItemID:      item.ItemID,
		ItemName:    item.ItemName,
		Description: item.Description,
		Price:       item.Price,
	}
}

func decodeOrder(snap *firestore.DocumentSnapshot) (*entity.Order, error) {
	var doc orderDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return toOrder(snap.Ref.ID, &doc), nil
}

func toOrder(id string, doc *orderDoc) *entity.Order {
	items := make([]entity.OrderItem, 0, len(doc.OrderItems))
	for _, item := range doc.OrderItems {
		items = append(items, entity.OrderItem{Name: item.Name, Quantity: item.Quantity, Price: item.Price})
	}

	order := &entity.Order{
		ID:            id,
		OrderID:       doc.OrderID,
		Items:         items,
		UserID:        doc.UserID,
		Amount:        doc.Amount,
		PaymentMethod: entity.PaymentMethod(doc.PaymentMethod),
		PaymentStatus: doc.PaymentStatus,
		Status:        entity.OrderStatus(doc.Status),
		IsNotified:    doc.IsNotified,
		Time:          doc.Time.UTC(),
		Notes:         doc.Notes,
	}
	if doc.ScheduleLater != nil {
		at := doc.ScheduleLater.UTC()
		order.ScheduleLater = &at
	}

	return order
}

func fromOrder(order *entity.Order) orderDoc {
	items := make([]orderItemDoc, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemDoc{Name: item.Name, Quantity: item.Quantity, Price: item.Price})
	}

	return orderDoc{
		OrderID:       order.OrderID,
		OrderItems:    items,
		UserID:        order.UserID,
		Amount:        order.Amount,
		PaymentMethod: string(order.PaymentMethod),
		PaymentStatus: order.PaymentStatus,
		ScheduleLater: order.ScheduleLater,
		Status:        string(order.Status),
		IsNotified:    order.IsNotified,
		Time:          order.Time,
		Notes:         order.Notes,
	}
}

func decodeTicket(snap *firestore.DocumentSnapshot) (*entity.Ticket, error) {
	var doc ticketDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return toTicket(snap.Ref.ID, &doc), nil
}

func toTicket(id string, doc *ticketDoc) *entity.Ticket {
	messages := make([]entity.TicketMessage, 0, len(doc.Messages))
	for _, m := range doc.Messages {
		messages = append(messages, entity.TicketMessage{
			SenderID:   m.SenderID,
			SenderName: m.SenderName,
			Text:       m.Text,
			Timestamp:  m.Timestamp.UTC(),
		})
	}

	return &entity.Ticket{
		ID:            id,
		UserID:        doc.UserID,
		UserName:      doc.UserName,
		Subject:       doc.Subject,
		Area:          entity.TicketArea(doc.Area),
		OrderID:       doc.OrderID,
		Status:        entity.TicketStatus(doc.Status),
		Messages:      messages,
		CreatedAt:     doc.CreatedAt.UTC(),
		LastUpdatedAt: doc.LastUpdatedAt.UTC(),
	}
}

func fromTicket(ticket *entity.Ticket) ticketDoc {
	messages := make([]ticketMessageDoc, 0, len(ticket.Messages))
	for _, m := range ticket.Messages {
		messages = append(messages, fromTicketMessage(m))
	}

	return ticketDoc{
		UserID:        ticket.UserID,
		UserName:      ticket.UserName,
		Area:          string(ticket.Area),
		Subject:       ticket.Subject,
		OrderID:       ticket.OrderID,
		Status:        string(ticket.Status),
		Messages:      messages,
		CreatedAt:     ticket.CreatedAt,
		LastUpdatedAt: ticket.LastUpdatedAt,
	}
}

func fromTicketMessage(m entity.TicketMessage) ticketMessageDoc {
	return ticketMessageDoc{
		Text:       m.Text,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		Timestamp:  m.Timestamp,
	}
}
