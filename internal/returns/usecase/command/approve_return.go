package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/tair/farmers-market/internal/catalog/domain"
	invdomain "github.com/tair/farmers-market/internal/inventory/domain"
	orderdomain "github.com/tair/farmers-market/internal/order/domain"
	"github.com/tair/farmers-market/internal/returns/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

// ApproveReturnCommand represents the command to approve a return request
type ApproveReturnCommand struct {
	RequestID int
}

// ApproveReturnResult carries the approved request and the refund issued at
// the order item's captured unit price.
type ApproveReturnResult struct {
	Request      *domain.ReturnRequest `json:"request"`
	RefundAmount float64               `json:"refund_amount"`
}

// ApproveReturnHandler handles approve return command
type ApproveReturnHandler struct {
	returns  domain.ReturnRepository
	orders   orderdomain.OrderRepository
	products catalogdomain.ProductRepository
	vendors  catalogdomain.VendorRepository
	stock    invdomain.StockRepository
}

// NewApproveReturnHandler creates a new approve return handler
func NewApproveReturnHandler(
	returns domain.ReturnRepository,
	orders orderdomain.OrderRepository,
	products catalogdomain.ProductRepository,
	vendors catalogdomain.VendorRepository,
	stock invdomain.StockRepository,
) *ApproveReturnHandler {
	return &ApproveReturnHandler{
		returns:  returns,
		orders:   orders,
		products: products,
		vendors:  vendors,
		stock:    stock,
	}
}

// Handle executes the approve return command: restock the vendor, refund at
// the captured unit price, shrink the order line, mark the request APPROVED.
// Everything is resolved before the request is claimed; the effects after
// the claim cannot fail, so a request never ends up half-applied and can be
// approved at most once.
func (h *ApproveReturnHandler) Handle(ctx context.Context, cmd ApproveReturnCommand) (*ApproveReturnResult, error) {
	request, err := h.returns.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.ReturnStatusPendingApproval {
		return nil, apperror.InvalidState("return request %d is not pending approval", request.ID)
	}

	// Defensive lookups; entities are never deleted, so these resolve.
	order, err := h.orders.FindByID(ctx, request.OrderID)
	if err != nil {
		return nil, err
	}
	product, err := h.products.FindByID(ctx, request.ProductID)
	if err != nil {
		return nil, err
	}
	vendor, err := h.vendors.FindByID(ctx, product.VendorID)
	if err != nil {
		return nil, err
	}
	item, ok := order.Item(request.ProductID)
	if !ok {
		return nil, apperror.NotFound("product %d not found in order %d", request.ProductID, order.ID)
	}

	refund := float64(request.Quantity) * item.UnitPrice

	if err := h.returns.MarkApproved(ctx, request.ID); err != nil {
		return nil, err
	}
	if err := h.stock.Add(ctx, vendor.ID, product.ID, request.Quantity); err != nil {
		return nil, fmt.Errorf("failed to restock: %w", err)
	}
	if err := h.orders.ApplyReturn(ctx, order.ID, product.ID, request.Quantity, refund); err != nil {
		return nil, fmt.Errorf("failed to apply return to order: %w", err)
	}

	approved, err := h.returns.FindByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	return &ApproveReturnResult{
		Request:      approved,
		RefundAmount: refund,
	}, nil
}
