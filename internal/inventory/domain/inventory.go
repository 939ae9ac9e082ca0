package domain

import "context"

// StockLine is one (product, quantity) entry of a batch decrement.
type StockLine struct {
	ProductID int
	Quantity  int
}

// StockLevel is the current ledger entry for a (vendor, product) pair.
type StockLevel struct {
	VendorID  int `json:"vendor_id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// StockRepository is the per-vendor stock ledger. Stock never goes below
// zero; decrements that would do so fail and leave the ledger untouched.
type StockRepository interface {
	// Add increases the ledger entry, creating it at 0 if absent.
	// Quantity must be non-negative.
	Add(ctx context.Context, vendorID, productID, quantity int) error

	// Decrement lowers a single entry. A non-positive quantity is a no-op;
	// a quantity above the current stock fails with InsufficientStock.
	Decrement(ctx context.Context, vendorID, productID, quantity int) error

	// DecrementBatch applies all lines or none. Every line is checked
	// against current stock before any entry is lowered.
	DecrementBatch(ctx context.Context, vendorID int, lines []StockLine) error

	// Quantity returns the current stock, 0 when the entry is absent.
	Quantity(ctx context.Context, vendorID, productID int) int

	// FindByVendor lists the vendor's ledger entries.
	FindByVendor(ctx context.Context, vendorID int) ([]StockLevel, error)
}
