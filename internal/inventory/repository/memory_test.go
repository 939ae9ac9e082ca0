package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/farmers-market/internal/inventory/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

func TestAddAndQuantity(t *testing.T) {
	repo := NewMemoryStockRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, 1000, 2000, 50))
	require.NoError(t, repo.Add(ctx, 1000, 2000, 25))

	assert.Equal(t, 75, repo.Quantity(ctx, 1000, 2000))
	assert.Equal(t, 0, repo.Quantity(ctx, 1000, 9999), "unknown product reads as zero")
	assert.Equal(t, 0, repo.Quantity(ctx, 9999, 2000), "unknown vendor reads as zero")
}

func TestAddRejectsNegativeQuantity(t *testing.T) {
	repo := NewMemoryStockRepository()

	err := repo.Add(context.Background(), 1000, 2000, -5)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestDecrementReducesStock(t *testing.T) {
	repo := NewMemoryStockRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, 1000, 2000, 10))
	require.NoError(t, repo.Decrement(ctx, 1000, 2000, 4))

	assert.Equal(t, 6, repo.Quantity(ctx, 1000, 2000))
}

func TestDecrementNonPositiveIsNoOp(t *testing.T) {
	repo := NewMemoryStockRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, 1000, 2000, 10))
	require.NoError(t, repo.Decrement(ctx, 1000, 2000, 0))
	require.NoError(t, repo.Decrement(ctx, 1000, 2000, -3))

	assert.Equal(t, 10, repo.Quantity(ctx, 1000, 2000))
}

func TestDecrementInsufficientStockLeavesLedgerUnchanged(t *testing.T) {
	repo := NewMemoryStockRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, 1000, 2000, 3))

	err := repo.Decrement(ctx, 1000, 2000, 5)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInsufficientStock, apperror.KindOf(err))
	assert.Equal(t, 3, repo.Quantity(ctx, 1000, 2000))
}

func TestDecrementBatchAllOrNothing(t *testing.T) {
	repo := NewMemoryStockRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, 1000, 2000, 10))
	require.NoError(t, repo.Add(ctx, 1000, 2001, 2))

	err := repo.DecrementBatch(ctx, 1000, []domain.StockLine{
		{ProductID: 2000, Quantity: 5},
		{ProductID: 2001, Quantity: 3},
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInsufficientStock, apperror.KindOf(err))

	// The first line must not have been applied.
	assert.Equal(t, 10, repo.Quantity(ctx, 1000, 2000))
	assert.Equal(t, 2, repo.Quantity(ctx, 1000, 2001))
}

func TestDecrementBatchAppliesAllLines(t *testing.T) {
	repo := NewMemoryStockRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, 1000, 2000, 10))
	require.NoError(t, repo.Add(ctx, 1000, 2001, 5))

	require.NoError(t, repo.DecrementBatch(ctx, 1000, []domain.StockLine{
		{ProductID: 2000, Quantity: 4},
		{ProductID: 2001, Quantity: 5},
	}))

	assert.Equal(t, 6, repo.Quantity(ctx, 1000, 2000))
	assert.Equal(t, 0, repo.Quantity(ctx, 1000, 2001))
}

func TestDecrementBatchRepeatedProductCheckedCumulatively(t *testing.T) {
	repo := NewMemoryStockRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, 1000, 2000, 5))

	err := repo.DecrementBatch(ctx, 1000, []domain.StockLine{
		{ProductID: 2000, Quantity: 3},
		{ProductID: 2000, Quantity: 3},
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInsufficientStock, apperror.KindOf(err))
	assert.Equal(t, 5, repo.Quantity(ctx, 1000, 2000))
}

func TestFindByVendorSortedByProduct(t *testing.T) {
	repo := NewMemoryStockRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, 1000, 2002, 1))
	require.NoError(t, repo.Add(ctx, 1000, 2000, 2))
	require.NoError(t, repo.Add(ctx, 1000, 2001, 3))

	levels, err := repo.FindByVendor(ctx, 1000)
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Equal(t, 2000, levels[0].ProductID)
	assert.Equal(t, 2001, levels[1].ProductID)
	assert.Equal(t, 2002, levels[2].ProductID)
}
