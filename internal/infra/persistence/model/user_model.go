// Package model holds the GORM models of the local document store.
package model

import "time"

// UserModel mirrors the 'users' table, one row per Users document.
type UserModel struct {
	ID         string `gorm:"type:varchar(128);primaryKey"`
	Name       string `gorm:"type:varchar(100);index"`
	AdminCheck bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
