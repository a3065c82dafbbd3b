package service

import "errors"

var (
	// ErrEmptyOrder rejects create and update calls with no lines.
	ErrEmptyOrder = errors.New("order must contain at least one line")

	// ErrProductUnavailable wraps inventory RPC failures. The write aborts
	// before any persistence.
	ErrProductUnavailable = errors.New("product service unavailable")

	// ErrInsufficientStock mirrors the inventory-side rejection at
	// validation time, naming the offending product in the wrap.
	ErrInsufficientStock = errors.New("insufficient stock")
)
