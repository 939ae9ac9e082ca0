//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"

	catalogdomain "github.com/tair/farmers-market/internal/catalog/domain"
	"github.com/tair/farmers-market/internal/inventory/delivery/http"
	"github.com/tair/farmers-market/internal/inventory/domain"
	"github.com/tair/farmers-market/internal/inventory/usecase/command"
	"github.com/tair/farmers-market/internal/inventory/usecase/query"
)

// HandlerSet wires the inventory usecases into the HTTP handler
var HandlerSet = wire.NewSet(
	command.NewAddStockHandler,
	command.NewDecreaseStockHandler,
	query.NewGetStockHandler,
	query.NewVendorInventoryHandler,
	http.NewInventoryHandler,
)

// InitializeHTTPHandler initializes the inventory HTTP handler with all dependencies
func InitializeHTTPHandler(
	stock domain.StockRepository,
	vendors catalogdomain.VendorRepository,
	products catalogdomain.ProductRepository,
) (*http.InventoryHandler, error) {
	wire.Build(HandlerSet)
	return nil, nil
}
