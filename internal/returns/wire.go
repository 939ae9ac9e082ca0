//go:build wireinject
// +build wireinject

package returns

import (
	"github.com/google/wire"

	catalogdomain "github.com/tair/farmers-market/internal/catalog/domain"
	invdomain "github.com/tair/farmers-market/internal/inventory/domain"
	orderdomain "github.com/tair/farmers-market/internal/order/domain"
	"github.com/tair/farmers-market/internal/returns/delivery/http"
	"github.com/tair/farmers-market/internal/returns/domain"
	"github.com/tair/farmers-market/internal/returns/usecase/command"
	"github.com/tair/farmers-market/internal/returns/usecase/query"
	"github.com/tair/farmers-market/kafka"
)

// HandlerSet wires the return usecases into the HTTP handler
var HandlerSet = wire.NewSet(
	command.NewRequestReturnHandler,
	command.NewApproveReturnHandler,
	query.NewGetReturnHandler,
	query.NewListReturnsHandler,
	http.NewReturnHandler,
)

// InitializeHTTPHandler initializes the returns HTTP handler with all dependencies
func InitializeHTTPHandler(
	returns domain.ReturnRepository,
	orders orderdomain.OrderRepository,
	products catalogdomain.ProductRepository,
	vendors catalogdomain.VendorRepository,
	stock invdomain.StockRepository,
	publisher *kafka.Publisher,
) (*http.ReturnHandler, error) {
	wire.Build(HandlerSet)
	return nil, nil
}
