package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/farmers-market/internal/order/usecase/command"
	"github.com/tair/farmers-market/internal/order/usecase/query"
	"github.com/tair/farmers-market/kafka"
	"github.com/tair/farmers-market/pkg/httpapi"
	"github.com/tair/farmers-market/pkg/logger"
)

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	placeOrderHandler *command.PlaceOrderHandler
	getOrderHandler   *query.GetOrderHandler
	listOrdersHandler *query.ListOrdersHandler
	kafkaPublisher    *kafka.Publisher // nil when eventing is disabled
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	placeOrderHandler *command.PlaceOrderHandler,
	getOrderHandler *query.GetOrderHandler,
	listOrdersHandler *query.ListOrdersHandler,
	kafkaPublisher *kafka.Publisher,
) *OrderHandler {
	return &OrderHandler{
		placeOrderHandler: placeOrderHandler,
		getOrderHandler:   getOrderHandler,
		listOrdersHandler: listOrdersHandler,
		kafkaPublisher:    kafkaPublisher,
	}
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VendorID int `json:"vendor_id"`
		Items    []struct {
			ProductID int `json:"product_id"`
			Quantity  int `json:"quantity"`
		} `json:"items"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondBadRequest(w, "Invalid request body")
		return
	}

	cmd := command.PlaceOrderCommand{VendorID: req.VendorID}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, command.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.placeOrderHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to place order")
		httpapi.RespondError(w, err)
		return
	}

	logger.Info(r.Context()).
		Int("order_id", order.ID).
		Int("vendor_id", order.VendorID).
		Float64("total", order.TotalAmount()).
		Msg("Order placed and confirmed")

	// Publish failures are logged, never surfaced; the order is already
	// confirmed.
	if h.kafkaPublisher != nil {
		_ = h.kafkaPublisher.PublishOrderEvent(r.Context(), kafka.EventTypeOrderConfirmed, kafka.OrderLifecycleEvent{
			OrderID:     order.ID,
			VendorID:    order.VendorID,
			Amount:      order.TotalAmount(),
			OrderStatus: string(order.Status),
		})
	}

	httpapi.RespondJSON(w, http.StatusCreated, httpapi.Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpapi.RespondBadRequest(w, "Invalid order ID")
		return
	}

	view, err := h.getOrderHandler.Handle(r.Context(), query.GetOrderQuery{OrderID: id})
	if err != nil {
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    view,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	views, err := h.listOrdersHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    views,
	})
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.ListOrders).Methods("GET")
	router.HandleFunc("/api/orders", h.PlaceOrder).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.GetOrder).Methods("GET")
}
