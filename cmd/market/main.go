package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/tair/farmers-market/internal/catalog"
	catalogrepo "github.com/tair/farmers-market/internal/catalog/repository"
	"github.com/tair/farmers-market/internal/config"
	"github.com/tair/farmers-market/internal/inventory"
	inventoryrepo "github.com/tair/farmers-market/internal/inventory/repository"
	"github.com/tair/farmers-market/internal/order"
	orderrepo "github.com/tair/farmers-market/internal/order/repository"
	"github.com/tair/farmers-market/internal/payment"
	paymentrepo "github.com/tair/farmers-market/internal/payment/repository"
	"github.com/tair/farmers-market/internal/returns"
	returnsrepo "github.com/tair/farmers-market/internal/returns/repository"
	"github.com/tair/farmers-market/internal/seed"
	"github.com/tair/farmers-market/internal/shipping"
	shippingrepo "github.com/tair/farmers-market/internal/shipping/repository"
	"github.com/tair/farmers-market/kafka"
	"github.com/tair/farmers-market/pkg/logger"
	"github.com/tair/farmers-market/pkg/middleware"
	"github.com/tair/farmers-market/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting market service")

	// Initialize tracing
	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
		}
	}()

	// In-memory stores; hot paths carry tracing decorators
	vendors := catalogrepo.NewMemoryVendorRepository()
	products := catalogrepo.NewMemoryProductRepository()
	stock := inventoryrepo.NewStockRepositoryWithTracing(inventoryrepo.NewMemoryStockRepository())
	orders := orderrepo.NewOrderRepositoryWithTracing(orderrepo.NewMemoryOrderRepository())
	payments := paymentrepo.NewMemoryPaymentRepository()
	deliveries := shippingrepo.NewMemoryDeliveryRepository()
	returnRequests := returnsrepo.NewMemoryReturnRepository()

	// Kafka publishing is optional; events are skipped when no brokers are set
	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Strs("brokers", cfg.KafkaBrokers).Msg("Failed to connect to Kafka")
		}
		defer publisher.Close()
		logger.Logger.Info().Strs("brokers", cfg.KafkaBrokers).Msg("Kafka publisher initialized")
	}

	// Initialize handlers with Wire DI
	catalogHandler, err := catalog.InitializeHTTPHandler(vendors, products, stock)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}
	inventoryHandler, err := inventory.InitializeHTTPHandler(stock, vendors, products)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}
	orderHandler, err := order.InitializeHTTPHandler(orders, vendors, products, stock, payments, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}
	paymentHandler, err := payment.InitializeHTTPHandler(payments, orders, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize payment handler")
	}
	deliveryHandler, err := shipping.InitializeHTTPHandler(deliveries, orders, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize delivery handler")
	}
	returnHandler, err := returns.InitializeHTTPHandler(returnRequests, orders, products, vendors, stock, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize return handler")
	}

	if cfg.SeedDemo {
		if err := seed.Demo(context.Background(), vendors, products, stock); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	// Setup router
	router := mux.NewRouter()

	metrics := middleware.NewHTTPMetrics("market")
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(metrics.Middleware)

	catalogHandler.RegisterRoutes(router)
	inventoryHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	paymentHandler.RegisterRoutes(router)
	deliveryHandler.RegisterRoutes(router)
	returnHandler.RegisterRoutes(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := middleware.Tracing("market-http", c.Handler(router))

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to shutdown HTTP server gracefully")
	}
}
