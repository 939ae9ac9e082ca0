package command

import (
	"context"
	"fmt"

	orderdomain "github.com/tair/farmers-market/internal/order/domain"
	"github.com/tair/farmers-market/internal/returns/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

// RequestReturnCommand represents the command to request a return
type RequestReturnCommand struct {
	OrderID   int
	ProductID int
	Quantity  int
}

// RequestReturnHandler handles request return command
type RequestReturnHandler struct {
	returns domain.ReturnRepository
	orders  orderdomain.OrderRepository
}

// NewRequestReturnHandler creates a new request return handler
func NewRequestReturnHandler(returns domain.ReturnRepository, orders orderdomain.OrderRepository) *RequestReturnHandler {
	return &RequestReturnHandler{returns: returns, orders: orders}
}

// Handle executes the request return command. The request is created in
// PENDING_APPROVAL; stock and refunds are untouched until approval.
func (h *RequestReturnHandler) Handle(ctx context.Context, cmd RequestReturnCommand) (*domain.ReturnRequest, error) {
	order, err := h.orders.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if order.Status != orderdomain.StatusDelivered && order.Status != orderdomain.StatusScheduledForDelivery {
		return nil, apperror.InvalidState("order %d is not eligible for returns", order.ID)
	}

	item, ok := order.Item(cmd.ProductID)
	if !ok {
		return nil, apperror.NotFound("product %d not found in order %d", cmd.ProductID, order.ID)
	}
	if cmd.Quantity <= 0 {
		return nil, apperror.Validation("return quantity must be positive")
	}
	if cmd.Quantity > item.Quantity {
		return nil, apperror.Validation(
			"cannot return more than purchased: requested %d, purchased %d",
			cmd.Quantity, item.Quantity)
	}

	request := &domain.ReturnRequest{
		OrderID:   order.ID,
		ProductID: item.ProductID,
		Quantity:  cmd.Quantity,
		Status:    domain.ReturnStatusPendingApproval,
	}
	if err := h.returns.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create return request: %w", err)
	}

	return request, nil
}
