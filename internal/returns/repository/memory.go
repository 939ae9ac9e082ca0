package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tair/farmers-market/internal/returns/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

const returnIDBase = 6000

// MemoryReturnRepository is an in-memory return request store
type MemoryReturnRepository struct {
	mu       sync.RWMutex
	requests map[int]domain.ReturnRequest
	nextID   int
}

// NewMemoryReturnRepository creates a new in-memory return repository
func NewMemoryReturnRepository() *MemoryReturnRepository {
	return &MemoryReturnRepository{
		requests: make(map[int]domain.ReturnRequest),
		nextID:   returnIDBase,
	}
}

func (r *MemoryReturnRepository) Create(_ context.Context, request *domain.ReturnRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	request.ID = r.nextID
	r.nextID++
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	r.requests[request.ID] = *request
	return nil
}

func (r *MemoryReturnRepository) FindByID(_ context.Context, id int) (*domain.ReturnRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[id]
	if !ok {
		return nil, apperror.NotFound("return request %d not found", id)
	}
	return &request, nil
}

func (r *MemoryReturnRepository) FindAll(_ context.Context) ([]domain.ReturnRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]domain.ReturnRequest, 0, len(r.requests))
	for _, req := range r.requests {
		requests = append(requests, req)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	return requests, nil
}

func (r *MemoryReturnRepository) MarkApproved(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return apperror.NotFound("return request %d not found", id)
	}
	if request.Status != domain.ReturnStatusPendingApproval {
		return apperror.InvalidState("return request %d is not pending approval", id)
	}
	request.Status = domain.ReturnStatusApproved
	request.UpdatedAt = time.Now()
	r.requests[id] = request
	return nil
}
