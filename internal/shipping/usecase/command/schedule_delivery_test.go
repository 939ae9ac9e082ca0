package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/tair/farmers-market/internal/order/domain"
	orderrepo "github.com/tair/farmers-market/internal/order/repository"
	"github.com/tair/farmers-market/internal/shipping/domain"
	"github.com/tair/farmers-market/internal/shipping/repository"
	"github.com/tair/farmers-market/pkg/apperror"
)

func newOrderWithStatus(t *testing.T, orders orderdomain.OrderRepository, status orderdomain.Status) *orderdomain.Order {
	t.Helper()

	order := &orderdomain.Order{
		VendorID: 1000,
		Items: []orderdomain.OrderItem{
			{ProductID: 2000, ProductName: "Tomato", Quantity: 2, UnitPrice: 30.0},
		},
		Status: status,
	}
	require.NoError(t, orders.Create(context.Background(), order))
	return order
}

func TestScheduleDelivery(t *testing.T) {
	orders := orderrepo.NewMemoryOrderRepository()
	deliveries := repository.NewMemoryDeliveryRepository()
	handler := NewScheduleDeliveryHandler(deliveries, orders)
	ctx := context.Background()

	order := newOrderWithStatus(t, orders, orderdomain.StatusPaid)

	delivery, err := handler.Handle(ctx, ScheduleDeliveryCommand{OrderID: order.ID, ScheduledDate: "2026-09-05"})
	require.NoError(t, err)

	assert.Equal(t, 5000, delivery.ID)
	assert.Equal(t, order.ID, delivery.OrderID)
	assert.Equal(t, domain.DeliveryStatusScheduled, delivery.Status)
	assert.Equal(t, "2026-09-05", delivery.ScheduledDate)

	updated, err := orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusScheduledForDelivery, updated.Status)
}

func TestScheduleDeliveryRequiresPaidOrder(t *testing.T) {
	for _, status := range []orderdomain.Status{
		orderdomain.StatusConfirmed,
		orderdomain.StatusPaymentPending,
		orderdomain.StatusScheduledForDelivery,
		orderdomain.StatusDelivered,
	} {
		t.Run(string(status), func(t *testing.T) {
			orders := orderrepo.NewMemoryOrderRepository()
			deliveries := repository.NewMemoryDeliveryRepository()
			handler := NewScheduleDeliveryHandler(deliveries, orders)

			order := newOrderWithStatus(t, orders, status)

			_, err := handler.Handle(context.Background(), ScheduleDeliveryCommand{
				OrderID:       order.ID,
				ScheduledDate: "2026-09-05",
			})
			require.Error(t, err)
			assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
		})
	}
}

func TestScheduleDeliveryValidation(t *testing.T) {
	orders := orderrepo.NewMemoryOrderRepository()
	deliveries := repository.NewMemoryDeliveryRepository()
	handler := NewScheduleDeliveryHandler(deliveries, orders)
	ctx := context.Background()

	order := newOrderWithStatus(t, orders, orderdomain.StatusPaid)

	_, err := handler.Handle(ctx, ScheduleDeliveryCommand{OrderID: order.ID, ScheduledDate: "  "})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = handler.Handle(ctx, ScheduleDeliveryCommand{OrderID: 9999, ScheduledDate: "2026-09-05"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
