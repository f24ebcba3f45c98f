package model

import "time"

// AccountModel mirrors the 'local_accounts' table used by the self-hosted identity provider.
type AccountModel struct {
	UID              string    `gorm:"type:varchar(128);primaryKey"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	DisplayName      string    `gorm:"type:varchar(100)"`
	EmailVerified    bool      `gorm:"not null;default:false"`
	TokensValidAfter time.Time `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "local_accounts"
}
