package query

import (
	"context"

	"github.com/tair/farmers-market/internal/inventory/domain"
)

// GetStockQuery represents the query for a single ledger entry
type GetStockQuery struct {
	VendorID  int
	ProductID int
}

// GetStockHandler handles get stock query
type GetStockHandler struct {
	stock domain.StockRepository
}

// NewGetStockHandler creates a new get stock handler
func NewGetStockHandler(stock domain.StockRepository) *GetStockHandler {
	return &GetStockHandler{stock: stock}
}

// Handle executes the get stock query. Absent entries read as zero; the
// query never fails.
func (h *GetStockHandler) Handle(ctx context.Context, q GetStockQuery) domain.StockLevel {
	return domain.StockLevel{
		VendorID:  q.VendorID,
		ProductID: q.ProductID,
		Quantity:  h.stock.Quantity(ctx, q.VendorID, q.ProductID),
	}
}
