package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tair/farmers-market/internal/order/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

const orderIDBase = 3000

// MemoryOrderRepository is an in-memory order store
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[int]domain.Order
	nextID int
}

// NewMemoryOrderRepository creates a new in-memory order repository
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[int]domain.Order),
		nextID: orderIDBase,
	}
}

func (r *MemoryOrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	r.orders[order.ID] = cloneOrder(*order)
	return nil
}

func (r *MemoryOrderRepository) FindByID(_ context.Context, id int) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperror.NotFound("order %d not found", id)
	}
	clone := cloneOrder(order)
	return &clone, nil
}

func (r *MemoryOrderRepository) FindAll(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, cloneOrder(o))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r *MemoryOrderRepository) UpdateStatus(_ context.Context, id int, status domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return apperror.NotFound("order %d not found", id)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

func (r *MemoryOrderRepository) ApplyReturn(_ context.Context, orderID, productID, quantity int, refund float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return apperror.NotFound("order %d not found", orderID)
	}

	found := false
	for i := range order.Items {
		if order.Items[i].ProductID == productID {
			order.Items[i].Quantity -= quantity
			if order.Items[i].Quantity < 0 {
				order.Items[i].Quantity = 0
			}
			found = true
			break
		}
	}
	if !found {
		return apperror.NotFound("product %d not found in order %d", productID, orderID)
	}

	order.RefundedAmount += refund
	order.UpdatedAt = time.Now()
	r.orders[orderID] = order
	return nil
}

// cloneOrder deep-copies the item slice so callers cannot mutate stored state.
func cloneOrder(o domain.Order) domain.Order {
	items := make([]domain.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
