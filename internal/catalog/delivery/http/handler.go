package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/farmers-market/internal/catalog/usecase/command"
	"github.com/tair/farmers-market/internal/catalog/usecase/query"
	"github.com/tair/farmers-market/pkg/httpapi"
	"github.com/tair/farmers-market/pkg/logger"
)

// CatalogHandler handles HTTP requests for vendors and products
type CatalogHandler struct {
	registerVendorHandler  *command.RegisterVendorHandler
	registerProductHandler *command.RegisterProductHandler
	getVendorHandler       *query.GetVendorHandler
	listVendorsHandler     *query.ListVendorsHandler
	getProductHandler      *query.GetProductHandler
	listProductsHandler    *query.ListProductsHandler
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	registerVendorHandler *command.RegisterVendorHandler,
	registerProductHandler *command.RegisterProductHandler,
	getVendorHandler *query.GetVendorHandler,
	listVendorsHandler *query.ListVendorsHandler,
	getProductHandler *query.GetProductHandler,
	listProductsHandler *query.ListProductsHandler,
) *CatalogHandler {
	return &CatalogHandler{
		registerVendorHandler:  registerVendorHandler,
		registerProductHandler: registerProductHandler,
		getVendorHandler:       getVendorHandler,
		listVendorsHandler:     listVendorsHandler,
		getProductHandler:      getProductHandler,
		listProductsHandler:    listProductsHandler,
	}
}

// RegisterVendor handles POST /api/vendors
func (h *CatalogHandler) RegisterVendor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondBadRequest(w, "Invalid request body")
		return
	}

	vendor, err := h.registerVendorHandler.Handle(r.Context(), command.RegisterVendorCommand{
		Name: req.Name,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to register vendor")
		httpapi.RespondError(w, err)
		return
	}

	logger.Info(r.Context()).
		Int("vendor_id", vendor.ID).
		Str("vendor_name", vendor.Name).
		Msg("Vendor registered")

	httpapi.RespondJSON(w, http.StatusCreated, httpapi.Response{
		Success: true,
		Message: "Vendor registered successfully",
		Data:    vendor,
	})
}

// RegisterProduct handles POST /api/products
func (h *CatalogHandler) RegisterProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string  `json:"name"`
		Price        float64 `json:"price"`
		VendorID     int     `json:"vendor_id"`
		InitialStock int     `json:"initial_stock"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondBadRequest(w, "Invalid request body")
		return
	}

	product, err := h.registerProductHandler.Handle(r.Context(), command.RegisterProductCommand{
		Name:         req.Name,
		Price:        req.Price,
		VendorID:     req.VendorID,
		InitialStock: req.InitialStock,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to register product")
		httpapi.RespondError(w, err)
		return
	}

	logger.Info(r.Context()).
		Int("product_id", product.ID).
		Int("vendor_id", product.VendorID).
		Float64("price", product.Price).
		Msg("Product registered")

	httpapi.RespondJSON(w, http.StatusCreated, httpapi.Response{
		Success: true,
		Message: "Product registered successfully",
		Data:    product,
	})
}

// GetVendor handles GET /api/vendors/{id}
func (h *CatalogHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpapi.RespondBadRequest(w, "Invalid vendor ID")
		return
	}

	vendor, err := h.getVendorHandler.Handle(r.Context(), query.GetVendorQuery{VendorID: id})
	if err != nil {
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    vendor,
	})
}

// ListVendors handles GET /api/vendors
func (h *CatalogHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.listVendorsHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list vendors")
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    vendors,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpapi.RespondBadRequest(w, "Invalid product ID")
		return
	}

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ProductID: id})
	if err != nil {
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    product,
	})
}

// ListProducts handles GET /api/products?vendor_id=N
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	vendorID, _ := strconv.Atoi(r.URL.Query().Get("vendor_id"))

	products, err := h.listProductsHandler.Handle(r.Context(), query.ListProductsQuery{VendorID: vendorID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		httpapi.RespondError(w, err)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    products,
	})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/vendors", h.ListVendors).Methods("GET")
	router.HandleFunc("/api/vendors", h.RegisterVendor).Methods("POST")
	router.HandleFunc("/api/vendors/{id}", h.GetVendor).Methods("GET")
	router.HandleFunc("/api/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/api/products", h.RegisterProduct).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.GetProduct).Methods("GET")
}
