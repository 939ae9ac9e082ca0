package domain

import (
	"context"
	"time"
)

// Status is the order lifecycle state machine. Orders enter at CONFIRMED;
// CREATED, DELIVERED and CANCELLED are declared states with no producing
// transition in the current operation set.
type Status string

const (
	StatusCreated              Status = "CREATED"
	StatusConfirmed            Status = "CONFIRMED"
	StatusPaymentPending       Status = "PAYMENT_PENDING"
	StatusPaid                 Status = "PAID"
	StatusScheduledForDelivery Status = "SCHEDULED_FOR_DELIVERY"
	StatusDelivered            Status = "DELIVERED"
	StatusCancelled            Status = "CANCELLED"
)

// OrderItem is a line within an order. ProductName and UnitPrice are
// snapshots taken at order time; the price stays fixed even if the catalog
// later changes. Quantity may only shrink, via approved returns, floor zero.
type OrderItem struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Order represents a customer purchase from a single vendor.
type Order struct {
	ID             int         `json:"id"`
	VendorID       int         `json:"vendor_id"`
	Items          []OrderItem `json:"items"`
	Status         Status      `json:"status"`
	RefundedAmount float64     `json:"refunded_amount"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// TotalAmount derives the order total from its items. It is never stored,
// so it always reflects post-return reduced quantities.
func (o *Order) TotalAmount() float64 {
	var total float64
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// Item returns the line for the given product, if present.
func (o *Order) Item(productID int) (OrderItem, bool) {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return OrderItem{}, false
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id int) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id int, status Status) error

	// ApplyReturn lowers the line quantity for the product (floor zero) and
	// adds the refund to the order's cumulative refund total, as one
	// mutation.
	ApplyReturn(ctx context.Context, orderID, productID, quantity int, refund float64) error
}
