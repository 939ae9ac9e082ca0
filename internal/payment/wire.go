//go:build wireinject
// +build wireinject

package payment

import (
	"github.com/google/wire"

	orderdomain "github.com/tair/farmers-market/internal/order/domain"
	"github.com/tair/farmers-market/internal/payment/delivery/http"
	"github.com/tair/farmers-market/internal/payment/domain"
	"github.com/tair/farmers-market/internal/payment/usecase/command"
	"github.com/tair/farmers-market/internal/payment/usecase/query"
	"github.com/tair/farmers-market/kafka"
)

// HandlerSet wires the payment usecases into the HTTP handler
var HandlerSet = wire.NewSet(
	command.NewRecordPaymentHandler,
	query.NewGetPaymentHandler,
	query.NewListOrderPaymentsHandler,
	query.NewAmountDueHandler,
	http.NewPaymentHandler,
)

// InitializeHTTPHandler initializes the payment HTTP handler with all dependencies
func InitializeHTTPHandler(
	payments domain.PaymentRepository,
	orders orderdomain.OrderRepository,
	publisher *kafka.Publisher,
) (*http.PaymentHandler, error) {
	wire.Build(HandlerSet)
	return nil, nil
}
