package domain

import (
	"context"
	"time"
)

// Payment is a recorded monetary contribution toward an order's total.
// Immutable once created.
type Payment struct {
	ID             int       `json:"id"`
	OrderID        int       `json:"order_id"`
	Amount         float64   `json:"amount"`
	Method         string    `json:"method"` // cash, upi, card, etc.
	TransactionRef string    `json:"transaction_ref"`
	CreatedAt      time.Time `json:"created_at"`
}

// PaymentRepository defines the contract for payment data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id int) (*Payment, error)
	FindByOrder(ctx context.Context, orderID int) ([]Payment, error)
	SumByOrder(ctx context.Context, orderID int) (float64, error)
}
