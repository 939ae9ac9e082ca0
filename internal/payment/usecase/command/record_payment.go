package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	orderdomain "github.com/tair/farmers-market/internal/order/domain"
	"github.com/tair/farmers-market/internal/payment/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

// RecordPaymentCommand represents the command to record a payment
type RecordPaymentCommand struct {
	OrderID int
	Amount  float64
	Method  string
}

// RecordPaymentResult carries the recorded payment and the derived figures
// the shell renders: change owed back to the customer and what remains due.
type RecordPaymentResult struct {
	Payment         *domain.Payment    `json:"payment"`
	ChangeDue       float64            `json:"change_due"`
	AmountRemaining float64            `json:"amount_remaining"`
	OrderStatus     orderdomain.Status `json:"order_status"`
}

// RecordPaymentHandler handles record payment command
type RecordPaymentHandler struct {
	payments domain.PaymentRepository
	orders   orderdomain.OrderRepository
}

// NewRecordPaymentHandler creates a new record payment handler
func NewRecordPaymentHandler(payments domain.PaymentRepository, orders orderdomain.OrderRepository) *RecordPaymentHandler {
	return &RecordPaymentHandler{payments: payments, orders: orders}
}

// Handle executes the record payment command. The amount is clamped to what
// is due; the excess is reported as change, never stored. The order moves to
// PAID once paid in full, PAYMENT_PENDING otherwise.
func (h *RecordPaymentHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (*RecordPaymentResult, error) {
	order, err := h.orders.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if order.Status == orderdomain.StatusDelivered {
		return nil, apperror.InvalidState("order %d is already delivered; no payment required", order.ID)
	}
	if cmd.Amount <= 0 {
		return nil, apperror.Validation("payment amount must be positive")
	}
	if strings.TrimSpace(cmd.Method) == "" {
		return nil, apperror.Validation("payment method is required")
	}

	paid, err := h.payments.SumByOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	total := order.TotalAmount()
	amountDue := total - paid
	if amountDue <= 0 {
		return nil, apperror.Validation("order %d is already fully paid", order.ID)
	}

	amount := cmd.Amount
	var change float64
	if amount > amountDue {
		change = amount - amountDue
		amount = amountDue
	}

	payment := &domain.Payment{
		OrderID:        order.ID,
		Amount:         amount,
		Method:         cmd.Method,
		TransactionRef: fmt.Sprintf("TXN-%s", uuid.New().String()[:12]),
	}
	if err := h.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	status := orderdomain.StatusPaymentPending
	if paid+amount >= total {
		status = orderdomain.StatusPaid
	}
	if err := h.orders.UpdateStatus(ctx, order.ID, status); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return &RecordPaymentResult{
		Payment:         payment,
		ChangeDue:       change,
		AmountRemaining: total - (paid + amount),
		OrderStatus:     status,
	}, nil
}
