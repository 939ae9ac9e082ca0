package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/farmers-market/internal/catalog/domain"
	invdomain "github.com/tair/farmers-market/internal/inventory/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

// RegisterProductCommand represents the command to register a product.
// InitialStock seeds the vendor's ledger, the way the original add-product
// flow did.
type RegisterProductCommand struct {
	Name         string
	Price        float64
	VendorID     int
	InitialStock int
}

// RegisterProductHandler handles register product command
type RegisterProductHandler struct {
	products domain.ProductRepository
	vendors  domain.VendorRepository
	stock    invdomain.StockRepository
}

// NewRegisterProductHandler creates a new register product handler
func NewRegisterProductHandler(
	products domain.ProductRepository,
	vendors domain.VendorRepository,
	stock invdomain.StockRepository,
) *RegisterProductHandler {
	return &RegisterProductHandler{products: products, vendors: vendors, stock: stock}
}

// Handle executes the register product command
func (h *RegisterProductHandler) Handle(ctx context.Context, cmd RegisterProductCommand) (*domain.Product, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, apperror.Validation("product name is required")
	}
	if cmd.Price <= 0 {
		return nil, apperror.Validation("product price must be positive")
	}
	if cmd.InitialStock < 0 {
		return nil, apperror.Validation("initial stock must be non-negative")
	}

	vendor, err := h.vendors.FindByID(ctx, cmd.VendorID)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:     cmd.Name,
		Price:    cmd.Price,
		VendorID: vendor.ID,
	}
	if err := h.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := h.stock.Add(ctx, vendor.ID, product.ID, cmd.InitialStock); err != nil {
		return nil, fmt.Errorf("failed to seed initial stock: %w", err)
	}

	return product, nil
}
