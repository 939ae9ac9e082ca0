package query

import (
	"context"

	"github.com/tair/farmers-market/internal/catalog/domain"
)

// GetVendorQuery represents the query to fetch a single vendor
type GetVendorQuery struct {
	VendorID int
}

// GetVendorHandler handles get vendor query
type GetVendorHandler struct {
	vendors domain.VendorRepository
}

// NewGetVendorHandler creates a new get vendor handler
func NewGetVendorHandler(vendors domain.VendorRepository) *GetVendorHandler {
	return &GetVendorHandler{vendors: vendors}
}

// Handle executes the get vendor query
func (h *GetVendorHandler) Handle(ctx context.Context, q GetVendorQuery) (*domain.Vendor, error) {
	return h.vendors.FindByID(ctx, q.VendorID)
}
