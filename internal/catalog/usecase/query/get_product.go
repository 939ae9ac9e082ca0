package query

import (
	"context"

	"github.com/tair/farmers-market/internal/catalog/domain"
)

// GetProductQuery represents the query to fetch a single product
type GetProductQuery struct {
	ProductID int
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	products domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(products domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{products: products}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	return h.products.FindByID(ctx, q.ProductID)
}
