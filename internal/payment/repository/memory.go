package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tair/farmers-market/internal/payment/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

const paymentIDBase = 4000

// MemoryPaymentRepository is an in-memory payment store
type MemoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[int]domain.Payment
	nextID   int
}

// NewMemoryPaymentRepository creates a new in-memory payment repository
func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{
		payments: make(map[int]domain.Payment),
		nextID:   paymentIDBase,
	}
}

func (r *MemoryPaymentRepository) Create(_ context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment.ID = r.nextID
	r.nextID++
	payment.CreatedAt = time.Now()
	r.payments[payment.ID] = *payment
	return nil
}

func (r *MemoryPaymentRepository) FindByID(_ context.Context, id int) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, apperror.NotFound("payment %d not found", id)
	}
	return &payment, nil
}

func (r *MemoryPaymentRepository) FindByOrder(_ context.Context, orderID int) ([]domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var payments []domain.Payment
	for _, p := range r.payments {
		if p.OrderID == orderID {
			payments = append(payments, p)
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].ID < payments[j].ID })
	return payments, nil
}

func (r *MemoryPaymentRepository) SumByOrder(_ context.Context, orderID int) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum float64
	for _, p := range r.payments {
		if p.OrderID == orderID {
			sum += p.Amount
		}
	}
	return sum, nil
}
