package model

import "time"

// InboxNotificationModel is the GORM-specific struct for the 'inbox_notifications' table.
// The composite key keeps one entry per order per user.
type InboxNotificationModel struct {
	UserID    string    `gorm:"type:varchar(128);primaryKey"`
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	OrderID   string    `gorm:"type:varchar(32);not null"`
	Status    string    `gorm:"type:varchar(16);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (InboxNotificationModel) TableName() string {
	return "inbox_notifications"
}

// InboxStateModel is the GORM-specific struct for the 'inbox_states' table holding the unread flag.
type InboxStateModel struct {
	UserID    string `gorm:"type:varchar(128);primaryKey"`
	Unread    bool   `gorm:"not null;default:false"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InboxStateModel) TableName() string {
	return "inbox_states"
}

// All lists every model migrated by the local store.
func All() []any {
	return []any{
		&UserModel{},
		&AccountModel{},
		&MenuItemModel{},
		&OrderModel{},
		&TicketModel{},
		&TicketMessageModel{},
		&InboxNotificationModel{},
		&InboxStateModel{},
	}
}
