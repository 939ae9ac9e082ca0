//go:build wireinject
// +build wireinject

package shipping

import (
	"github.com/google/wire"

	orderdomain "github.com/tair/farmers-market/internal/order/domain"
	"github.com/tair/farmers-market/internal/shipping/delivery/http"
	"github.com/tair/farmers-market/internal/shipping/domain"
	"github.com/tair/farmers-market/internal/shipping/usecase/command"
	"github.com/tair/farmers-market/internal/shipping/usecase/query"
	"github.com/tair/farmers-market/kafka"
)

// HandlerSet wires the shipping usecases into the HTTP handler
var HandlerSet = wire.NewSet(
	command.NewScheduleDeliveryHandler,
	query.NewGetDeliveryHandler,
	query.NewListDeliveriesHandler,
	http.NewDeliveryHandler,
)

// InitializeHTTPHandler initializes the shipping HTTP handler with all dependencies
func InitializeHTTPHandler(
	deliveries domain.DeliveryRepository,
	orders orderdomain.OrderRepository,
	publisher *kafka.Publisher,
) (*http.DeliveryHandler, error) {
	wire.Build(HandlerSet)
	return nil, nil
}
