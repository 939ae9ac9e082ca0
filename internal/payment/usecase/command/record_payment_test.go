package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/tair/farmers-market/internal/order/domain"
	orderrepo "github.com/tair/farmers-market/internal/order/repository"
	"github.com/tair/farmers-market/internal/payment/repository"
	"github.com/tair/farmers-market/pkg/apperror"
)

func newConfirmedOrder(t *testing.T, orders orderdomain.OrderRepository) *orderdomain.Order {
	t.Helper()

	order := &orderdomain.Order{
		VendorID: 1000,
		Items: []orderdomain.OrderItem{
			{ProductID: 2000, ProductName: "Tomato", Quantity: 1, UnitPrice: 30.0},
			{ProductID: 2001, ProductName: "Potato", Quantity: 1, UnitPrice: 10.0},
		},
		Status: orderdomain.StatusConfirmed,
	}
	require.NoError(t, orders.Create(context.Background(), order))
	return order
}

func TestRecordPaymentSettlesInInstallments(t *testing.T) {
	orders := orderrepo.NewMemoryOrderRepository()
	payments := repository.NewMemoryPaymentRepository()
	handler := NewRecordPaymentHandler(payments, orders)
	ctx := context.Background()

	order := newConfirmedOrder(t, orders)

	first, err := handler.Handle(ctx, RecordPaymentCommand{OrderID: order.ID, Amount: 15.0, Method: "CASH"})
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusPaymentPending, first.OrderStatus)
	assert.InDelta(t, 25.0, first.AmountRemaining, 1e-9)
	assert.InDelta(t, 0.0, first.ChangeDue, 1e-9)
	assert.Equal(t, 4000, first.Payment.ID)
	assert.Contains(t, first.Payment.TransactionRef, "TXN-")

	second, err := handler.Handle(ctx, RecordPaymentCommand{OrderID: order.ID, Amount: 25.0, Method: "CARD"})
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusPaid, second.OrderStatus)
	assert.InDelta(t, 0.0, second.AmountRemaining, 1e-9)

	updated, err := orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusPaid, updated.Status)

	// A third payment has nothing left to settle.
	_, err = handler.Handle(ctx, RecordPaymentCommand{OrderID: order.ID, Amount: 1.0, Method: "CASH"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestRecordPaymentClampsOverpayment(t *testing.T) {
	orders := orderrepo.NewMemoryOrderRepository()
	payments := repository.NewMemoryPaymentRepository()
	handler := NewRecordPaymentHandler(payments, orders)
	ctx := context.Background()

	order := newConfirmedOrder(t, orders)

	result, err := handler.Handle(ctx, RecordPaymentCommand{OrderID: order.ID, Amount: 45.0, Method: "CASH"})
	require.NoError(t, err)

	assert.Equal(t, orderdomain.StatusPaid, result.OrderStatus)
	assert.InDelta(t, 5.0, result.ChangeDue, 1e-9)
	assert.InDelta(t, 40.0, result.Payment.Amount, 1e-9, "only the due amount is stored")

	paid, err := payments.SumByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, paid, 1e-9)
}

func TestRecordPaymentRejectsDeliveredOrder(t *testing.T) {
	orders := orderrepo.NewMemoryOrderRepository()
	payments := repository.NewMemoryPaymentRepository()
	handler := NewRecordPaymentHandler(payments, orders)
	ctx := context.Background()

	order := newConfirmedOrder(t, orders)
	require.NoError(t, orders.UpdateStatus(ctx, order.ID, orderdomain.StatusDelivered))

	_, err := handler.Handle(ctx, RecordPaymentCommand{OrderID: order.ID, Amount: 10.0, Method: "CASH"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
}

func TestRecordPaymentValidation(t *testing.T) {
	orders := orderrepo.NewMemoryOrderRepository()
	payments := repository.NewMemoryPaymentRepository()
	handler := NewRecordPaymentHandler(payments, orders)
	ctx := context.Background()

	order := newConfirmedOrder(t, orders)

	tests := []struct {
		name string
		cmd  RecordPaymentCommand
		kind apperror.Kind
	}{
		{
			name: "unknown order",
			cmd:  RecordPaymentCommand{OrderID: 9999, Amount: 10.0, Method: "CASH"},
			kind: apperror.KindNotFound,
		},
		{
			name: "non-positive amount",
			cmd:  RecordPaymentCommand{OrderID: order.ID, Amount: 0, Method: "CASH"},
			kind: apperror.KindValidation,
		},
		{
			name: "missing method",
			cmd:  RecordPaymentCommand{OrderID: order.ID, Amount: 10.0, Method: "  "},
			kind: apperror.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(ctx, tt.cmd)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
		})
	}
}
