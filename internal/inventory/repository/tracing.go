package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/farmers-market/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// StockRepositoryWithTracing wraps a StockRepository with tracing
type StockRepositoryWithTracing struct {
	inner domain.StockRepository
}

// NewStockRepositoryWithTracing creates a new stock repository with tracing
func NewStockRepositoryWithTracing(inner domain.StockRepository) *StockRepositoryWithTracing {
	return &StockRepositoryWithTracing{inner: inner}
}

// Add with tracing
func (r *StockRepositoryWithTracing) Add(ctx context.Context, vendorID, productID, quantity int) error {
	ctx, span := tracer.Start(ctx, "repository.Add",
		trace.WithAttributes(
			attribute.Int("stock.vendor_id", vendorID),
			attribute.Int("stock.product_id", productID),
			attribute.Int("stock.quantity", quantity),
		),
	)
	defer span.End()

	err := r.inner.Add(ctx, vendorID, productID, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Decrement with tracing
func (r *StockRepositoryWithTracing) Decrement(ctx context.Context, vendorID, productID, quantity int) error {
	ctx, span := tracer.Start(ctx, "repository.Decrement",
		trace.WithAttributes(
			attribute.Int("stock.vendor_id", vendorID),
			attribute.Int("stock.product_id", productID),
			attribute.Int("stock.quantity", quantity),
		),
	)
	defer span.End()

	err := r.inner.Decrement(ctx, vendorID, productID, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// DecrementBatch with tracing
func (r *StockRepositoryWithTracing) DecrementBatch(ctx context.Context, vendorID int, lines []domain.StockLine) error {
	ctx, span := tracer.Start(ctx, "repository.DecrementBatch",
		trace.WithAttributes(
			attribute.Int("stock.vendor_id", vendorID),
			attribute.Int("stock.lines", len(lines)),
		),
	)
	defer span.End()

	err := r.inner.DecrementBatch(ctx, vendorID, lines)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Quantity with tracing
func (r *StockRepositoryWithTracing) Quantity(ctx context.Context, vendorID, productID int) int {
	ctx, span := tracer.Start(ctx, "repository.Quantity",
		trace.WithAttributes(
			attribute.Int("stock.vendor_id", vendorID),
			attribute.Int("stock.product_id", productID),
		),
	)
	defer span.End()

	quantity := r.inner.Quantity(ctx, vendorID, productID)
	span.SetAttributes(attribute.Int("stock.quantity", quantity))
	return quantity
}

// FindByVendor with tracing
func (r *StockRepositoryWithTracing) FindByVendor(ctx context.Context, vendorID int) ([]domain.StockLevel, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByVendor",
		trace.WithAttributes(
			attribute.Int("stock.vendor_id", vendorID),
		),
	)
	defer span.End()

	levels, err := r.inner.FindByVendor(ctx, vendorID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(levels)))
	return levels, nil
}
