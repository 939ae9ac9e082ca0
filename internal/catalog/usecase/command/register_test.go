package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/farmers-market/internal/catalog/repository"
	invrepo "github.com/tair/farmers-market/internal/inventory/repository"
	"github.com/tair/farmers-market/pkg/apperror"
)

func TestRegisterVendor(t *testing.T) {
	vendors := repository.NewMemoryVendorRepository()
	handler := NewRegisterVendorHandler(vendors)
	ctx := context.Background()

	first, err := handler.Handle(ctx, RegisterVendorCommand{Name: "Green Valley Produce"})
	require.NoError(t, err)
	assert.Equal(t, 1000, first.ID)
	assert.Equal(t, "Green Valley Produce", first.Name)

	second, err := handler.Handle(ctx, RegisterVendorCommand{Name: "Sunny Farms"})
	require.NoError(t, err)
	assert.Equal(t, 1001, second.ID, "vendor ids are sequential from 1000")
}

func TestRegisterVendorRequiresName(t *testing.T) {
	handler := NewRegisterVendorHandler(repository.NewMemoryVendorRepository())

	_, err := handler.Handle(context.Background(), RegisterVendorCommand{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestRegisterProductSeedsInitialStock(t *testing.T) {
	vendors := repository.NewMemoryVendorRepository()
	products := repository.NewMemoryProductRepository()
	stock := invrepo.NewMemoryStockRepository()
	ctx := context.Background()

	vendor, err := NewRegisterVendorHandler(vendors).Handle(ctx, RegisterVendorCommand{Name: "Green Valley Produce"})
	require.NoError(t, err)

	handler := NewRegisterProductHandler(products, vendors, stock)
	product, err := handler.Handle(ctx, RegisterProductCommand{
		Name:         "Tomato",
		Price:        30.0,
		VendorID:     vendor.ID,
		InitialStock: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 2000, product.ID)
	assert.Equal(t, vendor.ID, product.VendorID)
	assert.Equal(t, 100, stock.Quantity(ctx, vendor.ID, product.ID))
}

func TestRegisterProductValidation(t *testing.T) {
	vendors := repository.NewMemoryVendorRepository()
	products := repository.NewMemoryProductRepository()
	stock := invrepo.NewMemoryStockRepository()
	ctx := context.Background()

	vendor, err := NewRegisterVendorHandler(vendors).Handle(ctx, RegisterVendorCommand{Name: "Green Valley Produce"})
	require.NoError(t, err)

	handler := NewRegisterProductHandler(products, vendors, stock)

	tests := []struct {
		name string
		cmd  RegisterProductCommand
		kind apperror.Kind
	}{
		{
			name: "empty name",
			cmd:  RegisterProductCommand{Name: " ", Price: 10, VendorID: vendor.ID},
			kind: apperror.KindValidation,
		},
		{
			name: "non-positive price",
			cmd:  RegisterProductCommand{Name: "Tomato", Price: 0, VendorID: vendor.ID},
			kind: apperror.KindValidation,
		},
		{
			name: "negative initial stock",
			cmd:  RegisterProductCommand{Name: "Tomato", Price: 10, VendorID: vendor.ID, InitialStock: -1},
			kind: apperror.KindValidation,
		},
		{
			name: "unknown vendor",
			cmd:  RegisterProductCommand{Name: "Tomato", Price: 10, VendorID: 9999},
			kind: apperror.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(ctx, tt.cmd)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
		})
	}
}
