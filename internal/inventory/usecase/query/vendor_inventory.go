package query

import (
	"context"
	"fmt"

	catalogdomain "github.com/tair/farmers-market/internal/catalog/domain"
	"github.com/tair/farmers-market/internal/inventory/domain"
)

// VendorInventoryQuery represents the query for a vendor's inventory view
type VendorInventoryQuery struct {
	VendorID int
}

// VendorInventoryLine joins a product with its current stock.
type VendorInventoryLine struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// VendorInventoryView is the display-inventory view for one vendor.
type VendorInventoryView struct {
	VendorID   int                   `json:"vendor_id"`
	VendorName string                `json:"vendor_name"`
	Lines      []VendorInventoryLine `json:"lines"`
}

// VendorInventoryHandler handles the vendor inventory query
type VendorInventoryHandler struct {
	stock    domain.StockRepository
	vendors  catalogdomain.VendorRepository
	products catalogdomain.ProductRepository
}

// NewVendorInventoryHandler creates a new vendor inventory handler
func NewVendorInventoryHandler(
	stock domain.StockRepository,
	vendors catalogdomain.VendorRepository,
	products catalogdomain.ProductRepository,
) *VendorInventoryHandler {
	return &VendorInventoryHandler{stock: stock, vendors: vendors, products: products}
}

// Handle executes the vendor inventory query
func (h *VendorInventoryHandler) Handle(ctx context.Context, q VendorInventoryQuery) (*VendorInventoryView, error) {
	vendor, err := h.vendors.FindByID(ctx, q.VendorID)
	if err != nil {
		return nil, err
	}

	products, err := h.products.FindByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor products: %w", err)
	}

	view := &VendorInventoryView{
		VendorID:   vendor.ID,
		VendorName: vendor.Name,
		Lines:      make([]VendorInventoryLine, 0, len(products)),
	}
	for _, p := range products {
		view.Lines = append(view.Lines, VendorInventoryLine{
			ProductID:   p.ID,
			ProductName: p.Name,
			Price:       p.Price,
			Stock:       h.stock.Quantity(ctx, vendor.ID, p.ID),
		})
	}
	return view, nil
}
