package domain

import "time"

type Product struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       int64     `db:"price" json:"price"`
	Stock       int32     `db:"stock" json:"stock"`
	Category    string    `db:"category" json:"category"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type CreateProductInput struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"gt=0"`
	Stock       int32  `json:"stock" validate:"gte=0"`
	Category    string `json:"category"`
}
