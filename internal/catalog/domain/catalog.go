package domain

import (
	"context"
	"time"
)

// Vendor represents a seller owning a stock ledger over its products
type Vendor struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Product represents a catalog item with a fixed price, belonging to one
// vendor for its entire lifetime. Immutable once created.
type Product struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	VendorID  int       `json:"vendor_id"`
	CreatedAt time.Time `json:"created_at"`
}

// VendorRepository defines the contract for vendor data access
type VendorRepository interface {
	Create(ctx context.Context, vendor *Vendor) error
	FindByID(ctx context.Context, id int) (*Vendor, error)
	FindAll(ctx context.Context) ([]Vendor, error)
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id int) (*Product, error)
	FindByVendor(ctx context.Context, vendorID int) ([]Product, error)
	FindAll(ctx context.Context) ([]Product, error)
}
