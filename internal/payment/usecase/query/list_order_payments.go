package query

import (
	"context"

	"github.com/tair/farmers-market/internal/payment/domain"
)

// ListOrderPaymentsQuery represents the query for an order's payments
type ListOrderPaymentsQuery struct {
	OrderID int
}

// ListOrderPaymentsHandler handles list order payments query
type ListOrderPaymentsHandler struct {
	payments domain.PaymentRepository
}

// NewListOrderPaymentsHandler creates a new list order payments handler
func NewListOrderPaymentsHandler(payments domain.PaymentRepository) *ListOrderPaymentsHandler {
	return &ListOrderPaymentsHandler{payments: payments}
}

// Handle executes the list order payments query
func (h *ListOrderPaymentsHandler) Handle(ctx context.Context, q ListOrderPaymentsQuery) ([]domain.Payment, error) {
	return h.payments.FindByOrder(ctx, q.OrderID)
}
