package command

import (
	"context"
	"fmt"
	"strings"

	orderdomain "github.com/tair/farmers-market/internal/order/domain"
	"github.com/tair/farmers-market/internal/shipping/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

// ScheduleDeliveryCommand represents the command to schedule a delivery
type ScheduleDeliveryCommand struct {
	OrderID       int
	ScheduledDate string
}

// ScheduleDeliveryHandler handles schedule delivery command
type ScheduleDeliveryHandler struct {
	deliveries domain.DeliveryRepository
	orders     orderdomain.OrderRepository
}

// NewScheduleDeliveryHandler creates a new schedule delivery handler
func NewScheduleDeliveryHandler(
	deliveries domain.DeliveryRepository,
	orders orderdomain.OrderRepository,
) *ScheduleDeliveryHandler {
	return &ScheduleDeliveryHandler{deliveries: deliveries, orders: orders}
}

// Handle executes the schedule delivery command. Only a fully paid order can
// be scheduled; the order then moves to SCHEDULED_FOR_DELIVERY.
func (h *ScheduleDeliveryHandler) Handle(ctx context.Context, cmd ScheduleDeliveryCommand) (*domain.Delivery, error) {
	order, err := h.orders.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cmd.ScheduledDate) == "" {
		return nil, apperror.Validation("delivery date is required")
	}
	if order.Status != orderdomain.StatusPaid {
		return nil, apperror.InvalidState("payments for order %d must be settled before scheduling delivery", order.ID)
	}

	delivery := &domain.Delivery{
		OrderID:       order.ID,
		ScheduledDate: cmd.ScheduledDate,
		Status:        domain.DeliveryStatusScheduled,
	}
	if err := h.deliveries.Create(ctx, delivery); err != nil {
		return nil, fmt.Errorf("failed to create delivery: %w", err)
	}

	if err := h.orders.UpdateStatus(ctx, order.ID, orderdomain.StatusScheduledForDelivery); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return delivery, nil
}
