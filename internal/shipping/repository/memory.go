package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tair/farmers-market/internal/shipping/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

const deliveryIDBase = 5000

// MemoryDeliveryRepository is an in-memory delivery store
type MemoryDeliveryRepository struct {
	mu         sync.RWMutex
	deliveries map[int]domain.Delivery
	nextID     int
}

// NewMemoryDeliveryRepository creates a new in-memory delivery repository
func NewMemoryDeliveryRepository() *MemoryDeliveryRepository {
	return &MemoryDeliveryRepository{
		deliveries: make(map[int]domain.Delivery),
		nextID:     deliveryIDBase,
	}
}

func (r *MemoryDeliveryRepository) Create(_ context.Context, delivery *domain.Delivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delivery.ID = r.nextID
	r.nextID++
	delivery.CreatedAt = time.Now()
	r.deliveries[delivery.ID] = *delivery
	return nil
}

func (r *MemoryDeliveryRepository) FindByID(_ context.Context, id int) (*domain.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	delivery, ok := r.deliveries[id]
	if !ok {
		return nil, apperror.NotFound("delivery %d not found", id)
	}
	return &delivery, nil
}

func (r *MemoryDeliveryRepository) FindAll(_ context.Context) ([]domain.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deliveries := make([]domain.Delivery, 0, len(r.deliveries))
	for _, d := range r.deliveries {
		deliveries = append(deliveries, d)
	}
	sort.Slice(deliveries, func(i, j int) bool { return deliveries[i].ID < deliveries[j].ID })
	return deliveries, nil
}
