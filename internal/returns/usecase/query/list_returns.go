package query

import (
	"context"

	"github.com/tair/farmers-market/internal/returns/domain"
)

// ListReturnsHandler handles list returns query
type ListReturnsHandler struct {
	returns domain.ReturnRepository
}

// NewListReturnsHandler creates a new list returns handler
func NewListReturnsHandler(returns domain.ReturnRepository) *ListReturnsHandler {
	return &ListReturnsHandler{returns: returns}
}

// Handle executes the list returns query
func (h *ListReturnsHandler) Handle(ctx context.Context) ([]domain.ReturnRequest, error) {
	return h.returns.FindAll(ctx)
}
