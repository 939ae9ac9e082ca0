package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/farmers-market/internal/catalog/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

// RegisterVendorCommand represents the command to register a vendor
type RegisterVendorCommand struct {
	Name string
}

// RegisterVendorHandler handles register vendor command
type RegisterVendorHandler struct {
	vendors domain.VendorRepository
}

// NewRegisterVendorHandler creates a new register vendor handler
func NewRegisterVendorHandler(vendors domain.VendorRepository) *RegisterVendorHandler {
	return &RegisterVendorHandler{vendors: vendors}
}

// Handle executes the register vendor command
func (h *RegisterVendorHandler) Handle(ctx context.Context, cmd RegisterVendorCommand) (*domain.Vendor, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, apperror.Validation("vendor name is required")
	}

	vendor := &domain.Vendor{Name: cmd.Name}
	if err := h.vendors.Create(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return vendor, nil
}
