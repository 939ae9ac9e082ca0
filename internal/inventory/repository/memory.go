package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/tair/farmers-market/internal/inventory/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

// MemoryStockRepository is an in-memory stock ledger keyed by vendor then
// product. One mutex guards the whole ledger so batch decrements are atomic.
type MemoryStockRepository struct {
	mu    sync.RWMutex
	stock map[int]map[int]int
}

// NewMemoryStockRepository creates a new in-memory stock repository
func NewMemoryStockRepository() *MemoryStockRepository {
	return &MemoryStockRepository{
		stock: make(map[int]map[int]int),
	}
}

func (r *MemoryStockRepository) Add(_ context.Context, vendorID, productID, quantity int) error {
	if quantity < 0 {
		return apperror.Validation("stock quantity must be non-negative")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, ok := r.stock[vendorID]
	if !ok {
		ledger = make(map[int]int)
		r.stock[vendorID] = ledger
	}
	ledger[productID] += quantity
	return nil
}

func (r *MemoryStockRepository) Decrement(_ context.Context, vendorID, productID, quantity int) error {
	// Non-positive quantities are a silent no-op, matching addStock's
	// counterpart behavior in the original ledger.
	if quantity <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.stock[vendorID][productID]
	if quantity > current {
		return apperror.InsufficientStock(
			"insufficient stock for product %d: requested %d, available %d",
			productID, quantity, current)
	}
	r.stock[vendorID][productID] = current - quantity
	return nil
}

func (r *MemoryStockRepository) DecrementBatch(_ context.Context, vendorID int, lines []domain.StockLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check every line against a working view first so a mid-batch failure
	// leaves the ledger untouched. The working view accumulates across lines
	// so a product repeated within the batch is checked cumulatively.
	pending := make(map[int]int, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		available := r.stock[vendorID][line.ProductID] - pending[line.ProductID]
		if line.Quantity > available {
			return apperror.InsufficientStock(
				"insufficient stock for product %d: requested %d, available %d",
				line.ProductID, line.Quantity, available)
		}
		pending[line.ProductID] += line.Quantity
	}

	ledger, ok := r.stock[vendorID]
	if !ok {
		ledger = make(map[int]int)
		r.stock[vendorID] = ledger
	}
	for productID, quantity := range pending {
		ledger[productID] -= quantity
	}
	return nil
}

func (r *MemoryStockRepository) Quantity(_ context.Context, vendorID, productID int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.stock[vendorID][productID]
}

func (r *MemoryStockRepository) FindByVendor(_ context.Context, vendorID int) ([]domain.StockLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var levels []domain.StockLevel
	for productID, quantity := range r.stock[vendorID] {
		levels = append(levels, domain.StockLevel{
			VendorID:  vendorID,
			ProductID: productID,
			Quantity:  quantity,
		})
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].ProductID < levels[j].ProductID })
	return levels, nil
}
