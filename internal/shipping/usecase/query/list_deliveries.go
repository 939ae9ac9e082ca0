package query

import (
	"context"

	"github.com/tair/farmers-market/internal/shipping/domain"
)

// ListDeliveriesHandler handles list deliveries query
type ListDeliveriesHandler struct {
	deliveries domain.DeliveryRepository
}

// NewListDeliveriesHandler creates a new list deliveries handler
func NewListDeliveriesHandler(deliveries domain.DeliveryRepository) *ListDeliveriesHandler {
	return &ListDeliveriesHandler{deliveries: deliveries}
}

// Handle executes the list deliveries query
func (h *ListDeliveriesHandler) Handle(ctx context.Context) ([]domain.Delivery, error) {
	return h.deliveries.FindAll(ctx)
}
