package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/siamstore/backend/internal/models"
	"github.com/siamstore/backend/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	logger       *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// SubmitOrder handles POST /api/orders
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		h.logger.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	id, err := h.orderService.SubmitOrder(r.Context(), order)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubtotalMismatch):
			h.logger.Warn("order rejected", "reason", "subtotal mismatch")
			WriteError(w, http.StatusBadRequest, "Subtotal mismatch", h.logger)
		case errors.Is(err, service.ErrInvalidQuantity):
			h.logger.Warn("order rejected", "reason", "invalid quantity")
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.logger)
		default:
			h.logger.Error("failed to persist order", "error", err)
			WriteError(w, http.StatusInternalServerError, err.Error(), h.logger)
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"id": id}, h.logger)
	h.logger.Info("order created", "order_id", id, "items_count", len(order.Items))
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, orders, h.logger)
}
