package model

// MenuItemModel mirrors the 'menu_items' table.
type MenuItemModel struct {
	ID          string  `gorm:"type:varchar(64);primaryKey"`
	ItemID      string  `gorm:"type:varchar(32);index"`
	ItemName    string  `gorm:"type:varchar(200);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
