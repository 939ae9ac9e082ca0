package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/tair/farmers-market/internal/catalog/domain"
	catalogrepo "github.com/tair/farmers-market/internal/catalog/repository"
	invrepo "github.com/tair/farmers-market/internal/inventory/repository"
	orderdomain "github.com/tair/farmers-market/internal/order/domain"
	orderrepo "github.com/tair/farmers-market/internal/order/repository"
	"github.com/tair/farmers-market/internal/returns/domain"
	returnsrepo "github.com/tair/farmers-market/internal/returns/repository"
	"github.com/tair/farmers-market/pkg/apperror"
)

type returnsFixture struct {
	request *RequestReturnHandler
	approve *ApproveReturnHandler
	orders  orderdomain.OrderRepository
	stock   *invrepo.MemoryStockRepository
	vendor  *catalogdomain.Vendor
	tomato  *catalogdomain.Product
	order   *orderdomain.Order
}

// newReturnsFixture builds a delivered-stage order for 5 tomatoes captured at
// a unit price of 10.0, while the catalog price has since moved to 25.0.
func newReturnsFixture(t *testing.T, orderStatus orderdomain.Status) *returnsFixture {
	t.Helper()
	ctx := context.Background()

	vendors := catalogrepo.NewMemoryVendorRepository()
	products := catalogrepo.NewMemoryProductRepository()
	stock := invrepo.NewMemoryStockRepository()
	orders := orderrepo.NewMemoryOrderRepository()
	returns := returnsrepo.NewMemoryReturnRepository()

	vendor := &catalogdomain.Vendor{Name: "Green Valley Produce"}
	require.NoError(t, vendors.Create(ctx, vendor))
	tomato := &catalogdomain.Product{Name: "Tomato", Price: 25.0, VendorID: vendor.ID}
	require.NoError(t, products.Create(ctx, tomato))
	require.NoError(t, stock.Add(ctx, vendor.ID, tomato.ID, 95))

	order := &orderdomain.Order{
		VendorID: vendor.ID,
		Items: []orderdomain.OrderItem{
			{ProductID: tomato.ID, ProductName: "Tomato", Quantity: 5, UnitPrice: 10.0},
		},
		Status: orderStatus,
	}
	require.NoError(t, orders.Create(ctx, order))

	return &returnsFixture{
		request: NewRequestReturnHandler(returns, orders),
		approve: NewApproveReturnHandler(returns, orders, products, vendors, stock),
		orders:  orders,
		stock:   stock,
		vendor:  vendor,
		tomato:  tomato,
		order:   order,
	}
}

func TestRequestAndApproveReturn(t *testing.T) {
	f := newReturnsFixture(t, orderdomain.StatusDelivered)
	ctx := context.Background()

	request, err := f.request.Handle(ctx, RequestReturnCommand{
		OrderID:   f.order.ID,
		ProductID: f.tomato.ID,
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 6000, request.ID)
	assert.Equal(t, domain.ReturnStatusPendingApproval, request.Status)

	// Nothing moves until approval.
	assert.Equal(t, 95, f.stock.Quantity(ctx, f.vendor.ID, f.tomato.ID))

	result, err := f.approve.Handle(ctx, ApproveReturnCommand{RequestID: request.ID})
	require.NoError(t, err)

	assert.Equal(t, domain.ReturnStatusApproved, result.Request.Status)
	assert.InDelta(t, 20.0, result.RefundAmount, 1e-9, "refund uses the captured unit price, not the catalog price")

	assert.Equal(t, 97, f.stock.Quantity(ctx, f.vendor.ID, f.tomato.ID))

	order, err := f.orders.FindByID(ctx, f.order.ID)
	require.NoError(t, err)
	item, ok := order.Item(f.tomato.ID)
	require.True(t, ok)
	assert.Equal(t, 3, item.Quantity)
	assert.InDelta(t, 20.0, order.RefundedAmount, 1e-9)
	assert.InDelta(t, 30.0, order.TotalAmount(), 1e-9, "total reflects the shrunk line")
}

func TestApproveReturnOnlyOnce(t *testing.T) {
	f := newReturnsFixture(t, orderdomain.StatusDelivered)
	ctx := context.Background()

	request, err := f.request.Handle(ctx, RequestReturnCommand{
		OrderID:   f.order.ID,
		ProductID: f.tomato.ID,
		Quantity:  1,
	})
	require.NoError(t, err)

	_, err = f.approve.Handle(ctx, ApproveReturnCommand{RequestID: request.ID})
	require.NoError(t, err)

	_, err = f.approve.Handle(ctx, ApproveReturnCommand{RequestID: request.ID})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))

	// The second attempt must not restock again.
	assert.Equal(t, 96, f.stock.Quantity(ctx, f.vendor.ID, f.tomato.ID))
}

func TestRequestReturnEligibility(t *testing.T) {
	for _, status := range []orderdomain.Status{
		orderdomain.StatusConfirmed,
		orderdomain.StatusPaymentPending,
		orderdomain.StatusPaid,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newReturnsFixture(t, status)

			_, err := f.request.Handle(context.Background(), RequestReturnCommand{
				OrderID:   f.order.ID,
				ProductID: f.tomato.ID,
				Quantity:  1,
			})
			require.Error(t, err)
			assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
		})
	}
}

func TestRequestReturnBoundedByRemainingQuantity(t *testing.T) {
	f := newReturnsFixture(t, orderdomain.StatusDelivered)
	ctx := context.Background()

	request, err := f.request.Handle(ctx, RequestReturnCommand{
		OrderID:   f.order.ID,
		ProductID: f.tomato.ID,
		Quantity:  2,
	})
	require.NoError(t, err)
	_, err = f.approve.Handle(ctx, ApproveReturnCommand{RequestID: request.ID})
	require.NoError(t, err)

	// Three remain on the line; asking for four exceeds it.
	_, err = f.request.Handle(ctx, RequestReturnCommand{
		OrderID:   f.order.ID,
		ProductID: f.tomato.ID,
		Quantity:  4,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestRequestReturnValidation(t *testing.T) {
	f := newReturnsFixture(t, orderdomain.StatusDelivered)
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  RequestReturnCommand
		kind apperror.Kind
	}{
		{
			name: "unknown order",
			cmd:  RequestReturnCommand{OrderID: 9999, ProductID: f.tomato.ID, Quantity: 1},
			kind: apperror.KindNotFound,
		},
		{
			name: "product not in order",
			cmd:  RequestReturnCommand{OrderID: f.order.ID, ProductID: 9999, Quantity: 1},
			kind: apperror.KindNotFound,
		},
		{
			name: "non-positive quantity",
			cmd:  RequestReturnCommand{OrderID: f.order.ID, ProductID: f.tomato.ID, Quantity: 0},
			kind: apperror.KindValidation,
		},
		{
			name: "more than purchased",
			cmd:  RequestReturnCommand{OrderID: f.order.ID, ProductID: f.tomato.ID, Quantity: 6},
			kind: apperror.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.request.Handle(ctx, tt.cmd)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
		})
	}
}
