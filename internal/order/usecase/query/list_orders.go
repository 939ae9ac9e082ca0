package query

import (
	"context"

	"github.com/tair/farmers-market/internal/order/domain"
	paymentdomain "github.com/tair/farmers-market/internal/payment/domain"
)

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	orders   domain.OrderRepository
	payments paymentdomain.PaymentRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(orders domain.OrderRepository, payments paymentdomain.PaymentRepository) *ListOrdersHandler {
	return &ListOrdersHandler{orders: orders, payments: payments}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(ctx context.Context) ([]OrderView, error) {
	orders, err := h.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		paid, err := h.payments.SumByOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		total := order.TotalAmount()
		views = append(views, OrderView{
			Order:       order,
			TotalAmount: total,
			PaidAmount:  paid,
			AmountDue:   total - paid,
		})
	}
	return views, nil
}
