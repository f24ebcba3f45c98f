package model

import (
	"time"

	"canteen/internal/domain/entity"

	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Line items are stored as a JSON column because
// they are snapshots that are never queried on their own.
type OrderModel struct {
	ID            string                                `gorm:"type:varchar(64);primaryKey"`
	OrderID       string                                `gorm:"type:varchar(32);index"`
	Items         datatypes.JSONSlice[entity.OrderItem] `gorm:"not null"`
	UserID        string                                `gorm:"type:varchar(128);not null;index"`
	Amount        float64                               `gorm:"not null"`
	PaymentMethod string                                `gorm:"type:varchar(16);not null"`
	PaymentStatus bool                                  `gorm:"not null;default:false"`
	ScheduleLater *time.Time
	Status        string    `gorm:"type:varchar(16);not null;index"`
	IsNotified    bool      `gorm:"not null;default:false"`
	Time          time.Time `gorm:"not null;index"`
	Notes         string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
