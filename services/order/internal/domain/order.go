package domain

import "time"

type Order struct {
	ID         int64      `db:"id" json:"id"`
	UserID     int64      `db:"user_id" json:"user_id"`
	TotalPrice int64      `db:"total_price" json:"total_price"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

type OrderLine struct {
	ID        int64     `db:"id" json:"id"`
	OrderID   int64     `db:"order_id" json:"order_id"`
	ProductID int64     `db:"product_id" json:"product_id"`
	Quantity  int32     `db:"quantity" json:"quantity"`
	UnitPrice int64     `db:"unit_price" json:"unit_price"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// OrderLineInput is one requested line of a create or update call. LineID is
// zero for lines that do not exist yet; UnitPrice is never taken from the
// caller, it comes from the inventory snapshot at write time.
type OrderLineInput struct {
	LineID    int64 `json:"line_id"`
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int32 `json:"quantity" validate:"gt=0"`
}

// ProductSnapshot is the inventory view fetched for validation. It is
// re-fetched on every write and never stored as authoritative.
type ProductSnapshot struct {
	ID    int64
	Name  string
	Price int64
	Stock int32
}
