package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/farmers-market/internal/returns/usecase/command"
	"github.com/tair/farmers-market/internal/returns/usecase/query"
	"github.com/tair/farmers-market/kafka"
	"github.com/tair/farmers-market/pkg/httpapi"
	"github.com/tair/farmers-market/pkg/logger"
)

// ReturnHandler handles HTTP requests for return requests
type ReturnHandler struct {
	requestReturnHandler *command.RequestReturnHandler
	approveReturnHandler *command.ApproveReturnHandler
	getReturnHandler     *query.GetReturnHandler
	listReturnsHandler   *query.ListReturnsHandler
	kafkaPublisher       *kafka.Publisher // nil when eventing is disabled
}

// NewReturnHandler creates a new return handler
func NewReturnHandler(
	requestReturnHandler *command.RequestReturnHandler,
	approveReturnHandler *command.ApproveReturnHandler,
	getReturnHandler *query.GetReturnHandler,
	listReturnsHandler *query.ListReturnsHandler,
	kafkaPublisher *kafka.Publisher,
) *ReturnHandler {
	return &ReturnHandler{
		requestReturnHandler: requestReturnHandler,
		approveReturnHandler: approveReturnHandler,
		getReturnHandler:     getReturnHandler,
		listReturnsHandler:   listReturnsHandler,
		kafkaPublisher:       kafkaPublisher,
	}
}

// RequestReturn handles POST /api/returns
func (h *ReturnHandler) RequestReturn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID   int `json:"order_id"`
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondBadRequest(w, "Invalid request body")
		return
	}

	request, err := h.requestReturnHandler.Handle(r.Context(), command.RequestReturnCommand{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Int("order_id", req.OrderID).Msg("Failed to request return")
		httpapi.RespondError(w, err)
		return
	}

	logger.Info(r.Context()).
		Int("return_id", request.ID).
		Int("order_id", request.OrderID).
		Int("product_id", request.ProductID).
		Int("quantity", request.Quantity).
		Msg("Return requested")

	httpapi.RespondJSON(w, http.StatusCreated, httpapi.Response{
		Success: true,
		Message: "Return request created; approval required to restock",
		Data:    request,
	})
}

// ApproveReturn handles POST /api/returns/{id}/approve
func (h *ReturnHandler) ApproveReturn(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpapi.RespondBadRequest(w, "Invalid return request ID")
		return
	}

	result, err := h.approveReturnHandler.Handle(r.Context(), command.ApproveReturnCommand{RequestID: id})
	if err != nil {
		logger.Error(r.Context()).Err(err).Int("return_id", id).Msg("Failed to approve return")
		httpapi.RespondError(w, err)
		return
	}

	logger.Info(r.Context()).
		Int("return_id", result.Request.ID).
		Int("order_id", result.Request.OrderID).
		Float64("refund_amount", result.RefundAmount).
		Msg("Return approved")

	if h.kafkaPublisher != nil {
		_ = h.kafkaPublisher.PublishOrderEvent(r.Context(), kafka.EventTypeReturnApproved, kafka.OrderLifecycleEvent{
			OrderID:   result.Request.OrderID,
			ProductID: result.Request.ProductID,
			Quantity:  result.Request.Quantity,
			Amount:    result.RefundAmount,
		})
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Message: "Return approved successfully",
		Data:    result,
	})
}

// GetReturn handles GET /api/returns/{id}
func (h *ReturnHandler) GetReturn(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpapi.RespondBadRequest(w, "Invalid return request ID")
		return
	}

	request, err := h.getReturnHandler.Handle(r.Context(), query.GetReturnQuery{RequestID: id})
	if err != nil {
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    request,
	})
}

// ListReturns handles GET /api/returns
func (h *ReturnHandler) ListReturns(w http.ResponseWriter, r *http.Request) {
	requests, err := h.listReturnsHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list returns")
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    requests,
	})
}

// RegisterRoutes registers all return routes
func (h *ReturnHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/returns", h.ListReturns).Methods("GET")
	router.HandleFunc("/api/returns", h.RequestReturn).Methods("POST")
	router.HandleFunc("/api/returns/{id}", h.GetReturn).Methods("GET")
	router.HandleFunc("/api/returns/{id}/approve", h.ApproveReturn).Methods("POST")
}
