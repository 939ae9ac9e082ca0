package query

import (
	"context"

	"github.com/tair/farmers-market/internal/returns/domain"
)

// GetReturnQuery represents the query to fetch a single return request
type GetReturnQuery struct {
	RequestID int
}

// GetReturnHandler handles get return query
type GetReturnHandler struct {
	returns domain.ReturnRepository
}

// NewGetReturnHandler creates a new get return handler
func NewGetReturnHandler(returns domain.ReturnRepository) *GetReturnHandler {
	return &GetReturnHandler{returns: returns}
}

// Handle executes the get return query
func (h *GetReturnHandler) Handle(ctx context.Context, q GetReturnQuery) (*domain.ReturnRequest, error) {
	return h.returns.FindByID(ctx, q.RequestID)
}
