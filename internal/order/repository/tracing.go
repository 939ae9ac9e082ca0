package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/farmers-market/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// OrderRepositoryWithTracing wraps an OrderRepository with tracing
type OrderRepositoryWithTracing struct {
	inner domain.OrderRepository
}

// NewOrderRepositoryWithTracing creates a new order repository with tracing
func NewOrderRepositoryWithTracing(inner domain.OrderRepository) *OrderRepositoryWithTracing {
	return &OrderRepositoryWithTracing{inner: inner}
}

// Create with tracing
func (r *OrderRepositoryWithTracing) Create(ctx context.Context, order *domain.Order) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("order.vendor_id", order.VendorID),
			attribute.Int("order.items", len(order.Items)),
		),
	)
	defer span.End()

	err := r.inner.Create(ctx, order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("order.id", order.ID))
	return nil
}

// FindByID with tracing
func (r *OrderRepositoryWithTracing) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("order.id", id),
		),
	)
	defer span.End()

	order, err := r.inner.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("order.status", string(order.Status)))
	return order, nil
}

// FindAll with tracing
func (r *OrderRepositoryWithTracing) FindAll(ctx context.Context) ([]domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	orders, err := r.inner.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(orders)))
	return orders, nil
}

// UpdateStatus with tracing
func (r *OrderRepositoryWithTracing) UpdateStatus(ctx context.Context, id int, status domain.Status) error {
	ctx, span := tracer.Start(ctx, "repository.UpdateStatus",
		trace.WithAttributes(
			attribute.Int("order.id", id),
			attribute.String("order.status", string(status)),
		),
	)
	defer span.End()

	err := r.inner.UpdateStatus(ctx, id, status)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// ApplyReturn with tracing
func (r *OrderRepositoryWithTracing) ApplyReturn(ctx context.Context, orderID, productID, quantity int, refund float64) error {
	ctx, span := tracer.Start(ctx, "repository.ApplyReturn",
		trace.WithAttributes(
			attribute.Int("order.id", orderID),
			attribute.Int("order.product_id", productID),
			attribute.Int("return.quantity", quantity),
			attribute.Float64("return.refund", refund),
		),
	)
	defer span.End()

	err := r.inner.ApplyReturn(ctx, orderID, productID, quantity, refund)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
