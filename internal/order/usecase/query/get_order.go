package query

import (
	"context"

	"github.com/tair/farmers-market/internal/order/domain"
	paymentdomain "github.com/tair/farmers-market/internal/payment/domain"
)

// GetOrderQuery represents the query to fetch a single order
type GetOrderQuery struct {
	OrderID int
}

// OrderView is an order joined with its derived money figures.
type OrderView struct {
	domain.Order
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
	AmountDue   float64 `json:"amount_due"`
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	orders   domain.OrderRepository
	payments paymentdomain.PaymentRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(orders domain.OrderRepository, payments paymentdomain.PaymentRepository) *GetOrderHandler {
	return &GetOrderHandler{orders: orders, payments: payments}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(ctx context.Context, q GetOrderQuery) (*OrderView, error) {
	order, err := h.orders.FindByID(ctx, q.OrderID)
	if err != nil {
		return nil, err
	}

	paid, err := h.payments.SumByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	total := order.TotalAmount()
	return &OrderView{
		Order:       *order,
		TotalAmount: total,
		PaidAmount:  paid,
		AmountDue:   total - paid,
	}, nil
}
