//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"

	catalogdomain "github.com/tair/farmers-market/internal/catalog/domain"
	invdomain "github.com/tair/farmers-market/internal/inventory/domain"
	"github.com/tair/farmers-market/internal/order/delivery/http"
	"github.com/tair/farmers-market/internal/order/domain"
	"github.com/tair/farmers-market/internal/order/usecase/command"
	"github.com/tair/farmers-market/internal/order/usecase/query"
	paymentdomain "github.com/tair/farmers-market/internal/payment/domain"
	"github.com/tair/farmers-market/kafka"
)

// HandlerSet wires the order usecases into the HTTP handler
var HandlerSet = wire.NewSet(
	command.NewPlaceOrderHandler,
	query.NewGetOrderHandler,
	query.NewListOrdersHandler,
	http.NewOrderHandler,
)

// InitializeHTTPHandler initializes the order HTTP handler with all dependencies
func InitializeHTTPHandler(
	orders domain.OrderRepository,
	vendors catalogdomain.VendorRepository,
	products catalogdomain.ProductRepository,
	stock invdomain.StockRepository,
	payments paymentdomain.PaymentRepository,
	publisher *kafka.Publisher,
) (*http.OrderHandler, error) {
	wire.Build(HandlerSet)
	return nil, nil
}
