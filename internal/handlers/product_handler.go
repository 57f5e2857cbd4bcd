package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/siamstore/backend/internal/models"
	"github.com/siamstore/backend/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		h.logger.Error("failed to decode product request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	id, err := h.service.CreateProduct(r.Context(), product)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			h.logger.Warn("invalid product submission", "error", err)
			WriteError(w, http.StatusBadRequest, vErr.Error(), h.logger)
			return
		}

		h.logger.Error("failed to create product", "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"id": id}, h.logger)
	h.logger.Info("product created", "product_id", id, "title", product.Title)
}

// ListProducts handles GET /api/products with an optional category filter
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.service.ListProducts(r.Context(), category)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// SeedProducts handles POST /api/products/seed
func (h *ProductHandler) SeedProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Seed(r.Context())
	if err != nil {
		h.logger.Error("failed to seed products", "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, result, h.logger)
	h.logger.Info("seed endpoint called", "message", result.Message)
}
