package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	orderdomain "github.com/tair/farmers-market/internal/order/domain"
	"github.com/tair/farmers-market/internal/payment/usecase/command"
	"github.com/tair/farmers-market/internal/payment/usecase/query"
	"github.com/tair/farmers-market/kafka"
	"github.com/tair/farmers-market/pkg/httpapi"
	"github.com/tair/farmers-market/pkg/logger"
)

// PaymentHandler handles HTTP requests for payments
type PaymentHandler struct {
	recordPaymentHandler     *command.RecordPaymentHandler
	getPaymentHandler        *query.GetPaymentHandler
	listOrderPaymentsHandler *query.ListOrderPaymentsHandler
	amountDueHandler         *query.AmountDueHandler
	kafkaPublisher           *kafka.Publisher // nil when eventing is disabled
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(
	recordPaymentHandler *command.RecordPaymentHandler,
	getPaymentHandler *query.GetPaymentHandler,
	listOrderPaymentsHandler *query.ListOrderPaymentsHandler,
	amountDueHandler *query.AmountDueHandler,
	kafkaPublisher *kafka.Publisher,
) *PaymentHandler {
	return &PaymentHandler{
		recordPaymentHandler:     recordPaymentHandler,
		getPaymentHandler:        getPaymentHandler,
		listOrderPaymentsHandler: listOrderPaymentsHandler,
		amountDueHandler:         amountDueHandler,
		kafkaPublisher:           kafkaPublisher,
	}
}

// RecordPayment handles POST /api/payments
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID int     `json:"order_id"`
		Amount  float64 `json:"amount"`
		Method  string  `json:"method"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondBadRequest(w, "Invalid request body")
		return
	}

	result, err := h.recordPaymentHandler.Handle(r.Context(), command.RecordPaymentCommand{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  req.Method,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Int("order_id", req.OrderID).Msg("Failed to record payment")
		httpapi.RespondError(w, err)
		return
	}

	logger.Info(r.Context()).
		Int("payment_id", result.Payment.ID).
		Int("order_id", result.Payment.OrderID).
		Float64("amount", result.Payment.Amount).
		Float64("change_due", result.ChangeDue).
		Str("order_status", string(result.OrderStatus)).
		Msg("Payment recorded")

	if h.kafkaPublisher != nil && result.OrderStatus == orderdomain.StatusPaid {
		_ = h.kafkaPublisher.PublishOrderEvent(r.Context(), kafka.EventTypeOrderPaid, kafka.OrderLifecycleEvent{
			OrderID:     result.Payment.OrderID,
			Amount:      result.Payment.Amount,
			OrderStatus: string(result.OrderStatus),
		})
	}

	httpapi.RespondJSON(w, http.StatusCreated, httpapi.Response{
		Success: true,
		Message: "Payment recorded successfully",
		Data:    result,
	})
}

// GetPayment handles GET /api/payments/{id}
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpapi.RespondBadRequest(w, "Invalid payment ID")
		return
	}

	payment, err := h.getPaymentHandler.Handle(r.Context(), query.GetPaymentQuery{PaymentID: id})
	if err != nil {
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    payment,
	})
}

// ListOrderPayments handles GET /api/orders/{id}/payments
func (h *PaymentHandler) ListOrderPayments(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpapi.RespondBadRequest(w, "Invalid order ID")
		return
	}

	payments, err := h.listOrderPaymentsHandler.Handle(r.Context(), query.ListOrderPaymentsQuery{OrderID: orderID})
	if err != nil {
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    payments,
	})
}

// GetAmountDue handles GET /api/orders/{id}/due
func (h *PaymentHandler) GetAmountDue(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpapi.RespondBadRequest(w, "Invalid order ID")
		return
	}

	view, err := h.amountDueHandler.Handle(r.Context(), query.AmountDueQuery{OrderID: orderID})
	if err != nil {
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    view,
	})
}

// RegisterRoutes registers all payment routes
func (h *PaymentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/payments", h.RecordPayment).Methods("POST")
	router.HandleFunc("/api/payments/{id}", h.GetPayment).Methods("GET")
	router.HandleFunc("/api/orders/{id}/payments", h.ListOrderPayments).Methods("GET")
	router.HandleFunc("/api/orders/{id}/due", h.GetAmountDue).Methods("GET")
}
