//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/tair/farmers-market/internal/catalog/delivery/http"
	"github.com/tair/farmers-market/internal/catalog/domain"
	"github.com/tair/farmers-market/internal/catalog/usecase/command"
	"github.com/tair/farmers-market/internal/catalog/usecase/query"
	invdomain "github.com/tair/farmers-market/internal/inventory/domain"
)

// HandlerSet wires the catalog usecases into the HTTP handler
var HandlerSet = wire.NewSet(
	command.NewRegisterVendorHandler,
	command.NewRegisterProductHandler,
	query.NewGetVendorHandler,
	query.NewListVendorsHandler,
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	http.NewCatalogHandler,
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all dependencies
func InitializeHTTPHandler(
	vendors domain.VendorRepository,
	products domain.ProductRepository,
	stock invdomain.StockRepository,
) (*http.CatalogHandler, error) {
	wire.Build(HandlerSet)
	return nil, nil
}
