package query

import (
	"context"

	"github.com/tair/farmers-market/internal/catalog/domain"
)

// ListProductsQuery filters products by vendor when VendorID is set.
type ListProductsQuery struct {
	VendorID int
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	products domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(products domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{products: products}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.Product, error) {
	if q.VendorID != 0 {
		return h.products.FindByVendor(ctx, q.VendorID)
	}
	return h.products.FindAll(ctx)
}
