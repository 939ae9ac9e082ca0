package query

import (
	"context"

	"github.com/tair/farmers-market/internal/payment/domain"
)

// GetPaymentQuery represents the query to fetch a single payment
type GetPaymentQuery struct {
	PaymentID int
}

// GetPaymentHandler handles get payment query
type GetPaymentHandler struct {
	payments domain.PaymentRepository
}

// NewGetPaymentHandler creates a new get payment handler
func NewGetPaymentHandler(payments domain.PaymentRepository) *GetPaymentHandler {
	return &GetPaymentHandler{payments: payments}
}

// Handle executes the get payment query
func (h *GetPaymentHandler) Handle(ctx context.Context, q GetPaymentQuery) (*domain.Payment, error) {
	return h.payments.FindByID(ctx, q.PaymentID)
}
