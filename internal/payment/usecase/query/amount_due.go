package query

import (
	"context"

	orderdomain "github.com/tair/farmers-market/internal/order/domain"
	"github.com/tair/farmers-market/internal/payment/domain"
)

// AmountDueQuery represents the query for an order's outstanding balance
type AmountDueQuery struct {
	OrderID int
}

// AmountDueView reports the order's money position. AmountDue is the raw
// total minus paid; it can go negative when approved refunds exceed the
// remaining total, and is reported unclamped.
type AmountDueView struct {
	OrderID     int     `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
	AmountDue   float64 `json:"amount_due"`
}

// AmountDueHandler handles amount due query
type AmountDueHandler struct {
	payments domain.PaymentRepository
	orders   orderdomain.OrderRepository
}

// NewAmountDueHandler creates a new amount due handler
func NewAmountDueHandler(payments domain.PaymentRepository, orders orderdomain.OrderRepository) *AmountDueHandler {
	return &AmountDueHandler{payments: payments, orders: orders}
}

// Handle executes the amount due query
func (h *AmountDueHandler) Handle(ctx context.Context, q AmountDueQuery) (*AmountDueView, error) {
	order, err := h.orders.FindByID(ctx, q.OrderID)
	if err != nil {
		return nil, err
	}

	paid, err := h.payments.SumByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	total := order.TotalAmount()
	return &AmountDueView{
		OrderID:     order.ID,
		TotalAmount: total,
		PaidAmount:  paid,
		AmountDue:   total - paid,
	}, nil
}
