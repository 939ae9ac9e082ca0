package query

import (
	"context"

	"github.com/tair/farmers-market/internal/shipping/domain"
)

// GetDeliveryQuery represents the query to fetch a single delivery
type GetDeliveryQuery struct {
	DeliveryID int
}

// GetDeliveryHandler handles get delivery query
type GetDeliveryHandler struct {
	deliveries domain.DeliveryRepository
}

// NewGetDeliveryHandler creates a new get delivery handler
func NewGetDeliveryHandler(deliveries domain.DeliveryRepository) *GetDeliveryHandler {
	return &GetDeliveryHandler{deliveries: deliveries}
}

// Handle executes the get delivery query
func (h *GetDeliveryHandler) Handle(ctx context.Context, q GetDeliveryQuery) (*domain.Delivery, error) {
	return h.deliveries.FindByID(ctx, q.DeliveryID)
}
