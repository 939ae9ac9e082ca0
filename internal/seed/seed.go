package seed

import (
	"context"
	"fmt"

	catalogdomain "github.com/tair/farmers-market/internal/catalog/domain"
	"github.com/tair/farmers-market/internal/catalog/usecase/command"
	invdomain "github.com/tair/farmers-market/internal/inventory/domain"
	"github.com/tair/farmers-market/pkg/logger"
)

// Demo seeds a couple of vendors with stocked products so a fresh instance
// is usable right away. Everything goes through the real usecases.
func Demo(
	ctx context.Context,
	vendors catalogdomain.VendorRepository,
	products catalogdomain.ProductRepository,
	stock invdomain.StockRepository,
) error {
	registerVendor := command.NewRegisterVendorHandler(vendors)
	registerProduct := command.NewRegisterProductHandler(products, vendors, stock)

	greenValley, err := registerVendor.Handle(ctx, command.RegisterVendorCommand{Name: "Green Valley Produce"})
	if err != nil {
		return fmt.Errorf("failed to seed vendor: %w", err)
	}
	sunnyFarms, err := registerVendor.Handle(ctx, command.RegisterVendorCommand{Name: "Sunny Farms"})
	if err != nil {
		return fmt.Errorf("failed to seed vendor: %w", err)
	}

	demoProducts := []command.RegisterProductCommand{
		{Name: "Tomato", Price: 30.0, VendorID: greenValley.ID, InitialStock: 100},
		{Name: "Potato", Price: 20.0, VendorID: greenValley.ID, InitialStock: 200},
		{Name: "Carrot", Price: 25.0, VendorID: sunnyFarms.ID, InitialStock: 150},
	}
	for _, cmd := range demoProducts {
		if _, err := registerProduct.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", cmd.Name, err)
		}
	}

	logger.Logger.Info().
		Int("vendors", 2).
		Int("products", len(demoProducts)).
		Msg("Demo data seeded")
	return nil
}
