package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/farmers-market/internal/inventory/usecase/command"
	"github.com/tair/farmers-market/internal/inventory/usecase/query"
	"github.com/tair/farmers-market/pkg/httpapi"
	"github.com/tair/farmers-market/pkg/logger"
)

// InventoryHandler handles HTTP requests for the stock ledger
type InventoryHandler struct {
	addStockHandler        *command.AddStockHandler
	decreaseStockHandler   *command.DecreaseStockHandler
	getStockHandler        *query.GetStockHandler
	vendorInventoryHandler *query.VendorInventoryHandler
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	addStockHandler *command.AddStockHandler,
	decreaseStockHandler *command.DecreaseStockHandler,
	getStockHandler *query.GetStockHandler,
	vendorInventoryHandler *query.VendorInventoryHandler,
) *InventoryHandler {
	return &InventoryHandler{
		addStockHandler:        addStockHandler,
		decreaseStockHandler:   decreaseStockHandler,
		getStockHandler:        getStockHandler,
		vendorInventoryHandler: vendorInventoryHandler,
	}
}

// AddStock handles POST /api/inventory/add
func (h *InventoryHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VendorID  int `json:"vendor_id"`
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondBadRequest(w, "Invalid request body")
		return
	}

	err := h.addStockHandler.Handle(r.Context(), command.AddStockCommand{
		VendorID:  req.VendorID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to add stock")
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Message: "Stock added successfully",
	})
}

// DecreaseStock handles POST /api/inventory/decrease
func (h *InventoryHandler) DecreaseStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VendorID  int `json:"vendor_id"`
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondBadRequest(w, "Invalid request body")
		return
	}

	err := h.decreaseStockHandler.Handle(r.Context(), command.DecreaseStockCommand{
		VendorID:  req.VendorID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to decrease stock")
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Message: "Stock decreased successfully",
	})
}

// GetVendorInventory handles GET /api/inventory/{vendor_id}
func (h *InventoryHandler) GetVendorInventory(w http.ResponseWriter, r *http.Request) {
	vendorID, err := strconv.Atoi(mux.Vars(r)["vendor_id"])
	if err != nil {
		httpapi.RespondBadRequest(w, "Invalid vendor ID")
		return
	}

	view, err := h.vendorInventoryHandler.Handle(r.Context(), query.VendorInventoryQuery{VendorID: vendorID})
	if err != nil {
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    view,
	})
}

// GetStock handles GET /api/inventory/{vendor_id}/{product_id}
func (h *InventoryHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vendorID, err := strconv.Atoi(vars["vendor_id"])
	if err != nil {
		httpapi.RespondBadRequest(w, "Invalid vendor ID")
		return
	}
	productID, err := strconv.Atoi(vars["product_id"])
	if err != nil {
		httpapi.RespondBadRequest(w, "Invalid product ID")
		return
	}

	level := h.getStockHandler.Handle(r.Context(), query.GetStockQuery{
		VendorID:  vendorID,
		ProductID: productID,
	})

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    level,
	})
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory/add", h.AddStock).Methods("POST")
	router.HandleFunc("/api/inventory/decrease", h.DecreaseStock).Methods("POST")
	router.HandleFunc("/api/inventory/{vendor_id}", h.GetVendorInventory).Methods("GET")
	router.HandleFunc("/api/inventory/{vendor_id}/{product_id}", h.GetStock).Methods("GET")
}
