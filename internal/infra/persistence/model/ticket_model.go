package model

import "time"

// TicketModel mirrors the 'support_tickets' table.
type TicketModel struct {
	ID            string               `gorm:"type:varchar(64);primaryKey"`
	UserID        string               `gorm:"type:varchar(128);not null;index"`
	UserName      string               `gorm:"type:varchar(100)"`
	Subject       string               `gorm:"type:varchar(200);not null"`
	Area          string               `gorm:"type:varchar(32);not null"`
	OrderID       string               `gorm:"type:varchar(32)"`
	Status        string               `gorm:"type:varchar(16);not null;index"`
	Messages      []TicketMessageModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	LastUpdatedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (TicketModel) TableName() string {
	return "support_tickets"
}

// TicketMessageModel mirrors the 'support_ticket_messages' table. Rows are append-only and
// the auto-incremented ID preserves conversation order.
type TicketMessageModel struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	TicketID   string    `gorm:"type:varchar(64);not null;index"`
	SenderID   string    `gorm:"type:varchar(128);not null"`
	SenderName string    `gorm:"type:varchar(100)"`
	Text       string    `gorm:"type:text;not null"`
	Timestamp  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TicketMessageModel) TableName() string {
	return "support_ticket_messages"
}
