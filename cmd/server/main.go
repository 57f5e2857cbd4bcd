package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/siamstore/backend/internal/config"
	"github.com/siamstore/backend/internal/handlers"
	"github.com/siamstore/backend/internal/middleware"
	"github.com/siamstore/backend/internal/repository"
	"github.com/siamstore/backend/internal/service"
	"github.com/siamstore/backend/internal/store"
	"github.com/siamstore/backend/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting e-commerce api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Select the document store: MongoDB when configured, in-memory otherwise
	ctx := context.Background()
	var docStore store.Store
	var mongoStore *store.MongoStore

	if cfg.Database.URL != "" {
		mongoStore, err = store.NewMongoStore(ctx, cfg.Database.URL, cfg.Database.Name)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		docStore = mongoStore
		log.Info("connected to mongodb", "database", cfg.Database.Name)
	} else {
		docStore = store.NewMemoryStore()
		log.Warn("DATABASE_URL not set, using in-memory store; data will not survive restarts")
	}

	// Initialize repositories
	productRepo := repository.NewStoreProductRepository(docStore)
	orderRepo := repository.NewStoreOrderRepository(docStore)

	// Initialize services
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(docStore, cfg.Database, log)
	schemaHandler := handlers.NewSchemaHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Root, health and diagnostics endpoints
	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Get("/test", diagnosticsHandler.ServeHTTP)
	r.Get("/schema", schemaHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Product endpoints
		r.Post("/products", productHandler.CreateProduct)
		r.Get("/products", productHandler.ListProducts)
		r.With(middleware.AdminAPIKey(cfg.Auth)).Post("/products/seed", productHandler.SeedProducts)

		// Order endpoints
		r.Post("/orders", orderHandler.SubmitOrder)
		r.Get("/orders", orderHandler.ListOrders)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Close the database connection last
	if mongoStore != nil {
		if err := mongoStore.Disconnect(shutdownCtx); err != nil {
			log.Error("failed to disconnect from database", "error", err)
		}
	}

	log.Info("server stopped gracefully")
}
