package command

import (
	"context"

	catalogdomain "github.com/tair/farmers-market/internal/catalog/domain"
	"github.com/tair/farmers-market/internal/inventory/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

// DecreaseStockCommand represents the command to decrease stock
type DecreaseStockCommand struct {
	VendorID  int
	ProductID int
	Quantity  int
}

// DecreaseStockHandler handles decrease stock command
type DecreaseStockHandler struct {
	stock    domain.StockRepository
	vendors  catalogdomain.VendorRepository
	products catalogdomain.ProductRepository
}

// NewDecreaseStockHandler creates a new decrease stock handler
func NewDecreaseStockHandler(
	stock domain.StockRepository,
	vendors catalogdomain.VendorRepository,
	products catalogdomain.ProductRepository,
) *DecreaseStockHandler {
	return &DecreaseStockHandler{stock: stock, vendors: vendors, products: products}
}

// Handle executes the decrease stock command. A non-positive quantity is a
// no-op, matching the original ledger behavior.
func (h *DecreaseStockHandler) Handle(ctx context.Context, cmd DecreaseStockCommand) error {
	vendor, err := h.vendors.FindByID(ctx, cmd.VendorID)
	if err != nil {
		return err
	}

	product, err := h.products.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return err
	}
	if product.VendorID != vendor.ID {
		return apperror.NotFound("product %d does not belong to vendor %d", product.ID, vendor.ID)
	}

	return h.stock.Decrement(ctx, vendor.ID, product.ID, cmd.Quantity)
}
