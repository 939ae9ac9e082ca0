package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tair/farmers-market/internal/catalog/domain"
	"github.com/tair/farmers-market/pkg/apperror"
)

// Id counters start at per-kind base offsets so ids never collide across
// entity kinds.
const (
	vendorIDBase  = 1000
	productIDBase = 2000
)

// MemoryVendorRepository is an in-memory vendor store
type MemoryVendorRepository struct {
	mu      sync.RWMutex
	vendors map[int]domain.Vendor
	nextID  int
}

// NewMemoryVendorRepository creates a new in-memory vendor repository
func NewMemoryVendorRepository() *MemoryVendorRepository {
	return &MemoryVendorRepository{
		vendors: make(map[int]domain.Vendor),
		nextID:  vendorIDBase,
	}
}

func (r *MemoryVendorRepository) Create(_ context.Context, vendor *domain.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	vendor.ID = r.nextID
	r.nextID++
	vendor.CreatedAt = time.Now()
	r.vendors[vendor.ID] = *vendor
	return nil
}

func (r *MemoryVendorRepository) FindByID(_ context.Context, id int) (*domain.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendor, ok := r.vendors[id]
	if !ok {
		return nil, apperror.NotFound("vendor %d not found", id)
	}
	return &vendor, nil
}

func (r *MemoryVendorRepository) FindAll(_ context.Context) ([]domain.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendors := make([]domain.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		vendors = append(vendors, v)
	}
	sort.Slice(vendors, func(i, j int) bool { return vendors[i].ID < vendors[j].ID })
	return vendors, nil
}

// MemoryProductRepository is an in-memory product store
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[int]domain.Product
	nextID   int
}

// NewMemoryProductRepository creates a new in-memory product repository
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[int]domain.Product),
		nextID:   productIDBase,
	}
}

func (r *MemoryProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	product.CreatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperror.NotFound("product %d not found", id)
	}
	return &product, nil
}

func (r *MemoryProductRepository) FindByVendor(_ context.Context, vendorID int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []domain.Product
	for _, p := range r.products {
		if p.VendorID == vendorID {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *MemoryProductRepository) FindAll(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}
