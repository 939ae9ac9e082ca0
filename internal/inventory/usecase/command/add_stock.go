package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/tair/farmers-market/internal/catalog/domain"
	"github.com/tair/farmers-market/internal/inventory/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

// AddStockCommand represents the command to add stock for a vendor's product
type AddStockCommand struct {
	VendorID  int
	ProductID int
	Quantity  int
}

// AddStockHandler handles add stock command
type AddStockHandler struct {
	stock    domain.StockRepository
	vendors  catalogdomain.VendorRepository
	products catalogdomain.ProductRepository
}

// NewAddStockHandler creates a new add stock handler
func NewAddStockHandler(
	stock domain.StockRepository,
	vendors catalogdomain.VendorRepository,
	products catalogdomain.ProductRepository,
) *AddStockHandler {
	return &AddStockHandler{stock: stock, vendors: vendors, products: products}
}

// Handle executes the add stock command
func (h *AddStockHandler) Handle(ctx context.Context, cmd AddStockCommand) error {
	if cmd.Quantity < 0 {
		return apperror.Validation("stock quantity must be non-negative")
	}

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

	if err := h.stock.Add(ctx, vendor.ID, product.ID, cmd.Quantity); err != nil {
		return fmt.Errorf("failed to add stock: %w", err)
	}

	return nil
}
