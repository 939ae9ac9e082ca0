package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/tair/farmers-market/internal/catalog/domain"
	invdomain "github.com/tair/farmers-market/internal/inventory/domain"
	"github.com/tair/farmers-market/internal/order/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

// OrderLine is one requested (product, quantity) pair.
type OrderLine struct {
	ProductID int
	Quantity  int
}

// PlaceOrderCommand represents the command to place an order
type PlaceOrderCommand struct {
	VendorID int
	Items    []OrderLine
}

// PlaceOrderHandler handles place order command
type PlaceOrderHandler struct {
	orders   domain.OrderRepository
	vendors  catalogdomain.VendorRepository
	products catalogdomain.ProductRepository
	stock    invdomain.StockRepository
}

// NewPlaceOrderHandler creates a new place order handler
func NewPlaceOrderHandler(
	orders domain.OrderRepository,
	vendors catalogdomain.VendorRepository,
	products catalogdomain.ProductRepository,
	stock invdomain.StockRepository,
) *PlaceOrderHandler {
	return &PlaceOrderHandler{orders: orders, vendors: vendors, products: products, stock: stock}
}

// Handle executes the place order command. Product names and prices are
// snapshotted at order time; stock is decremented for all lines or none,
// and the order enters directly at CONFIRMED.
func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	vendor, err := h.vendors.FindByID(ctx, cmd.VendorID)
	if err != nil {
		return nil, err
	}

	if len(cmd.Items) == 0 {
		return nil, apperror.Validation("order must contain at least one item")
	}

	items := make([]domain.OrderItem, 0, len(cmd.Items))
	lines := make([]invdomain.StockLine, 0, len(cmd.Items))
	for _, line := range cmd.Items {
		if line.Quantity <= 0 {
			return nil, apperror.Validation("order quantity must be positive")
		}

		product, err := h.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product.VendorID != vendor.ID {
			return nil, apperror.NotFound("product %d does not belong to vendor %d", product.ID, vendor.ID)
		}

		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
		})
		lines = append(lines, invdomain.StockLine{
			ProductID: product.ID,
			Quantity:  line.Quantity,
		})
	}

	// All lines are checked before any entry is lowered, so a mid-batch
	// shortage leaves the ledger untouched and no order is created.
	if err := h.stock.DecrementBatch(ctx, vendor.ID, lines); err != nil {
		return nil, err
	}

	order := &domain.Order{
		VendorID: vendor.ID,
		Items:    items,
		Status:   domain.StatusConfirmed,
	}
	if err := h.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}
