package query

import (
	"context"

	"github.com/tair/farmers-market/internal/catalog/domain"
)

// ListVendorsHandler handles list vendors query
type ListVendorsHandler struct {
	vendors domain.VendorRepository
}

// NewListVendorsHandler creates a new list vendors handler
func NewListVendorsHandler(vendors domain.VendorRepository) *ListVendorsHandler {
	return &ListVendorsHandler{vendors: vendors}
}

// Handle executes the list vendors query
func (h *ListVendorsHandler) Handle(ctx context.Context) ([]domain.Vendor, error) {
	return h.vendors.FindAll(ctx)
}
