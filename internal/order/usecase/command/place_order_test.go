package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/tair/farmers-market/internal/catalog/domain"
	catalogrepo "github.com/tair/farmers-market/internal/catalog/repository"
	invrepo "github.com/tair/farmers-market/internal/inventory/repository"
	"github.com/tair/farmers-market/internal/order/domain"
	orderrepo "github.com/tair/farmers-market/internal/order/repository"
	"github.com/tair/farmers-market/pkg/apperror"
)

type placeOrderFixture struct {
	handler *PlaceOrderHandler
	stock   *invrepo.MemoryStockRepository
	vendor  *catalogdomain.Vendor
	tomato  *catalogdomain.Product
	potato  *catalogdomain.Product
}

func newPlaceOrderFixture(t *testing.T) *placeOrderFixture {
	t.Helper()
	ctx := context.Background()

	vendors := catalogrepo.NewMemoryVendorRepository()
	products := catalogrepo.NewMemoryProductRepository()
	stock := invrepo.NewMemoryStockRepository()
	orders := orderrepo.NewMemoryOrderRepository()

	vendor := &catalogdomain.Vendor{Name: "Green Valley Produce"}
	require.NoError(t, vendors.Create(ctx, vendor))

	tomato := &catalogdomain.Product{Name: "Tomato", Price: 30.0, VendorID: vendor.ID}
	require.NoError(t, products.Create(ctx, tomato))
	potato := &catalogdomain.Product{Name: "Potato", Price: 20.0, VendorID: vendor.ID}
	require.NoError(t, products.Create(ctx, potato))

	require.NoError(t, stock.Add(ctx, vendor.ID, tomato.ID, 100))
	require.NoError(t, stock.Add(ctx, vendor.ID, potato.ID, 200))

	return &placeOrderFixture{
		handler: NewPlaceOrderHandler(orders, vendors, products, stock),
		stock:   stock,
		vendor:  vendor,
		tomato:  tomato,
		potato:  potato,
	}
}

func TestPlaceOrderConfirmsAndDecrementsStock(t *testing.T) {
	f := newPlaceOrderFixture(t)
	ctx := context.Background()

	order, err := f.handler.Handle(ctx, PlaceOrderCommand{
		VendorID: f.vendor.ID,
		Items: []OrderLine{
			{ProductID: f.tomato.ID, Quantity: 1},
			{ProductID: f.potato.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3000, order.ID)
	assert.Equal(t, domain.StatusConfirmed, order.Status)
	assert.InDelta(t, 70.0, order.TotalAmount(), 1e-9)

	assert.Equal(t, 99, f.stock.Quantity(ctx, f.vendor.ID, f.tomato.ID))
	assert.Equal(t, 198, f.stock.Quantity(ctx, f.vendor.ID, f.potato.ID))
}

func TestPlaceOrderSnapshotsNameAndPrice(t *testing.T) {
	f := newPlaceOrderFixture(t)
	ctx := context.Background()

	order, err := f.handler.Handle(ctx, PlaceOrderCommand{
		VendorID: f.vendor.ID,
		Items:    []OrderLine{{ProductID: f.tomato.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	item, ok := order.Item(f.tomato.ID)
	require.True(t, ok)
	assert.Equal(t, "Tomato", item.ProductName)
	assert.InDelta(t, 30.0, item.UnitPrice, 1e-9)
}

func TestPlaceOrderInsufficientStockLeavesEverythingUntouched(t *testing.T) {
	f := newPlaceOrderFixture(t)
	ctx := context.Background()

	_, err := f.handler.Handle(ctx, PlaceOrderCommand{
		VendorID: f.vendor.ID,
		Items: []OrderLine{
			{ProductID: f.tomato.ID, Quantity: 10},
			{ProductID: f.potato.ID, Quantity: 500},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInsufficientStock, apperror.KindOf(err))

	// No line of the failed order may have touched the ledger.
	assert.Equal(t, 100, f.stock.Quantity(ctx, f.vendor.ID, f.tomato.ID))
	assert.Equal(t, 200, f.stock.Quantity(ctx, f.vendor.ID, f.potato.ID))
}

func TestPlaceOrderValidation(t *testing.T) {
	f := newPlaceOrderFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  PlaceOrderCommand
		kind apperror.Kind
	}{
		{
			name: "unknown vendor",
			cmd:  PlaceOrderCommand{VendorID: 9999, Items: []OrderLine{{ProductID: f.tomato.ID, Quantity: 1}}},
			kind: apperror.KindNotFound,
		},
		{
			name: "empty items",
			cmd:  PlaceOrderCommand{VendorID: f.vendor.ID},
			kind: apperror.KindValidation,
		},
		{
			name: "zero quantity",
			cmd:  PlaceOrderCommand{VendorID: f.vendor.ID, Items: []OrderLine{{ProductID: f.tomato.ID, Quantity: 0}}},
			kind: apperror.KindValidation,
		},
		{
			name: "unknown product",
			cmd:  PlaceOrderCommand{VendorID: f.vendor.ID, Items: []OrderLine{{ProductID: 9999, Quantity: 1}}},
			kind: apperror.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.handler.Handle(ctx, tt.cmd)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
		})
	}
}

func TestPlaceOrderRejectsForeignProduct(t *testing.T) {
	ctx := context.Background()

	vendors := catalogrepo.NewMemoryVendorRepository()
	products := catalogrepo.NewMemoryProductRepository()
	stock := invrepo.NewMemoryStockRepository()
	orders := orderrepo.NewMemoryOrderRepository()

	first := &catalogdomain.Vendor{Name: "Green Valley Produce"}
	require.NoError(t, vendors.Create(ctx, first))
	second := &catalogdomain.Vendor{Name: "Sunny Farms"}
	require.NoError(t, vendors.Create(ctx, second))

	carrot := &catalogdomain.Product{Name: "Carrot", Price: 25.0, VendorID: second.ID}
	require.NoError(t, products.Create(ctx, carrot))
	require.NoError(t, stock.Add(ctx, second.ID, carrot.ID, 150))

	handler := NewPlaceOrderHandler(orders, vendors, products, stock)
	_, err := handler.Handle(ctx, PlaceOrderCommand{
		VendorID: first.ID,
		Items:    []OrderLine{{ProductID: carrot.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
