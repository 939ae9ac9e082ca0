package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/tair/farmers-market/internal/catalog/domain"
	catalogrepo "github.com/tair/farmers-market/internal/catalog/repository"
	"github.com/tair/farmers-market/internal/inventory/repository"
	"github.com/tair/farmers-market/pkg/apperror"
)

type stockFixture struct {
	add      *AddStockHandler
	decrease *DecreaseStockHandler
	stock    *repository.MemoryStockRepository
	vendor   *catalogdomain.Vendor
	tomato   *catalogdomain.Product
	carrot   *catalogdomain.Product
}

func newStockFixture(t *testing.T) *stockFixture {
	t.Helper()
	ctx := context.Background()

	vendors := catalogrepo.NewMemoryVendorRepository()
	products := catalogrepo.NewMemoryProductRepository()
	stock := repository.NewMemoryStockRepository()

	vendor := &catalogdomain.Vendor{Name: "Green Valley Produce"}
	require.NoError(t, vendors.Create(ctx, vendor))
	other := &catalogdomain.Vendor{Name: "Sunny Farms"}
	require.NoError(t, vendors.Create(ctx, other))

	tomato := &catalogdomain.Product{Name: "Tomato", Price: 30.0, VendorID: vendor.ID}
	require.NoError(t, products.Create(ctx, tomato))
	carrot := &catalogdomain.Product{Name: "Carrot", Price: 25.0, VendorID: other.ID}
	require.NoError(t, products.Create(ctx, carrot))

	return &stockFixture{
		add:      NewAddStockHandler(stock, vendors, products),
		decrease: NewDecreaseStockHandler(stock, vendors, products),
		stock:    stock,
		vendor:   vendor,
		tomato:   tomato,
		carrot:   carrot,
	}
}

func TestAddStock(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	require.NoError(t, f.add.Handle(ctx, AddStockCommand{VendorID: f.vendor.ID, ProductID: f.tomato.ID, Quantity: 40}))
	require.NoError(t, f.add.Handle(ctx, AddStockCommand{VendorID: f.vendor.ID, ProductID: f.tomato.ID, Quantity: 10}))

	assert.Equal(t, 50, f.stock.Quantity(ctx, f.vendor.ID, f.tomato.ID))
}

func TestAddStockRejectsForeignProduct(t *testing.T) {
	f := newStockFixture(t)

	err := f.add.Handle(context.Background(), AddStockCommand{
		VendorID:  f.vendor.ID,
		ProductID: f.carrot.ID,
		Quantity:  10,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestDecreaseStock(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	require.NoError(t, f.add.Handle(ctx, AddStockCommand{VendorID: f.vendor.ID, ProductID: f.tomato.ID, Quantity: 10}))
	require.NoError(t, f.decrease.Handle(ctx, DecreaseStockCommand{VendorID: f.vendor.ID, ProductID: f.tomato.ID, Quantity: 4}))

	assert.Equal(t, 6, f.stock.Quantity(ctx, f.vendor.ID, f.tomato.ID))

	err := f.decrease.Handle(ctx, DecreaseStockCommand{VendorID: f.vendor.ID, ProductID: f.tomato.ID, Quantity: 7})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInsufficientStock, apperror.KindOf(err))
	assert.Equal(t, 6, f.stock.Quantity(ctx, f.vendor.ID, f.tomato.ID))
}

func TestDecreaseStockNonPositiveIsNoOp(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	require.NoError(t, f.add.Handle(ctx, AddStockCommand{VendorID: f.vendor.ID, ProductID: f.tomato.ID, Quantity: 10}))
	require.NoError(t, f.decrease.Handle(ctx, DecreaseStockCommand{VendorID: f.vendor.ID, ProductID: f.tomato.ID, Quantity: -2}))

	assert.Equal(t, 10, f.stock.Quantity(ctx, f.vendor.ID, f.tomato.ID))
}

func TestStockCommandsRequireKnownVendorAndProduct(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	err := f.add.Handle(ctx, AddStockCommand{VendorID: 9999, ProductID: f.tomato.ID, Quantity: 1})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	err = f.decrease.Handle(ctx, DecreaseStockCommand{VendorID: f.vendor.ID, ProductID: 9999, Quantity: 1})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
