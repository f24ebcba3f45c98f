package entity

// MenuItem is a MenuItems document.
type MenuItem struct {
	ID          string  `json:"id"`      // Document ID.
	ItemID      string  `json:"item_id"` // Human-readable code such as "V01". Unique by convention only.
	ItemName    string  `json:"item_name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
