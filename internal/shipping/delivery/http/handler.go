package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/farmers-market/internal/shipping/usecase/command"
	"github.com/tair/farmers-market/internal/shipping/usecase/query"
	"github.com/tair/farmers-market/kafka"
	"github.com/tair/farmers-market/pkg/httpapi"
	"github.com/tair/farmers-market/pkg/logger"
)

// DeliveryHandler handles HTTP requests for deliveries
type DeliveryHandler struct {
	scheduleDeliveryHandler *command.ScheduleDeliveryHandler
	getDeliveryHandler      *query.GetDeliveryHandler
	listDeliveriesHandler   *query.ListDeliveriesHandler
	kafkaPublisher          *kafka.Publisher // nil when eventing is disabled
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(
	scheduleDeliveryHandler *command.ScheduleDeliveryHandler,
	getDeliveryHandler *query.GetDeliveryHandler,
	listDeliveriesHandler *query.ListDeliveriesHandler,
	kafkaPublisher *kafka.Publisher,
) *DeliveryHandler {
	return &DeliveryHandler{
		scheduleDeliveryHandler: scheduleDeliveryHandler,
		getDeliveryHandler:      getDeliveryHandler,
		listDeliveriesHandler:   listDeliveriesHandler,
		kafkaPublisher:          kafkaPublisher,
	}
}

// ScheduleDelivery handles POST /api/deliveries
func (h *DeliveryHandler) ScheduleDelivery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID       int    `json:"order_id"`
		ScheduledDate string `json:"scheduled_date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondBadRequest(w, "Invalid request body")
		return
	}

	delivery, err := h.scheduleDeliveryHandler.Handle(r.Context(), command.ScheduleDeliveryCommand{
		OrderID:       req.OrderID,
		ScheduledDate: req.ScheduledDate,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Int("order_id", req.OrderID).Msg("Failed to schedule delivery")
		httpapi.RespondError(w, err)
		return
	}

	logger.Info(r.Context()).
		Int("delivery_id", delivery.ID).
		Int("order_id", delivery.OrderID).
		Str("scheduled_date", delivery.ScheduledDate).
		Msg("Delivery scheduled")

	if h.kafkaPublisher != nil {
		_ = h.kafkaPublisher.PublishOrderEvent(r.Context(), kafka.EventTypeDeliveryScheduled, kafka.OrderLifecycleEvent{
			OrderID:     delivery.OrderID,
			OrderStatus: string(delivery.Status),
		})
	}

	httpapi.RespondJSON(w, http.StatusCreated, httpapi.Response{
		Success: true,
		Message: "Delivery scheduled successfully",
		Data:    delivery,
	})
}

// GetDelivery handles GET /api/deliveries/{id}
func (h *DeliveryHandler) GetDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpapi.RespondBadRequest(w, "Invalid delivery ID")
		return
	}

	delivery, err := h.getDeliveryHandler.Handle(r.Context(), query.GetDeliveryQuery{DeliveryID: id})
	if err != nil {
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    delivery,
	})
}

// ListDeliveries handles GET /api/deliveries
func (h *DeliveryHandler) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.listDeliveriesHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list deliveries")
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    deliveries,
	})
}

// RegisterRoutes registers all delivery routes
func (h *DeliveryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/deliveries", h.ListDeliveries).Methods("GET")
	router.HandleFunc("/api/deliveries", h.ScheduleDelivery).Methods("POST")
	router.HandleFunc("/api/deliveries/{id}", h.GetDelivery).Methods("GET")
}
