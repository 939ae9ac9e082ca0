package domain

import (
	"context"
	"time"
)

// ReturnStatus is the return request state machine. DENIED is declared but
// no operation produces it; approval is the only transition.
type ReturnStatus string

const (
	ReturnStatusPendingApproval ReturnStatus = "PENDING_APPROVAL"
	ReturnStatusApproved        ReturnStatus = "APPROVED"
	ReturnStatusDenied          ReturnStatus = "DENIED"
)

// ReturnRequest is a request to give back previously purchased quantity,
// pending approval before restock and refund.
type ReturnRequest struct {
	ID        int          `json:"id"`
	OrderID   int          `json:"order_id"`
	ProductID int          `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Status    ReturnStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ReturnRepository defines the contract for return request data access
type ReturnRepository interface {
	Create(ctx context.Context, request *ReturnRequest) error
	FindByID(ctx context.Context, id int) (*ReturnRequest, error)
	FindAll(ctx context.Context) ([]ReturnRequest, error)

	// MarkApproved transitions the request from PENDING_APPROVAL to
	// APPROVED. Any other current status fails with InvalidState, so a
	// request can be approved at most once.
	MarkApproved(ctx context.Context, id int) error
}
