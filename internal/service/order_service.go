package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/siamstore/backend/internal/models"
	"github.com/siamstore/backend/internal/repository"
)

var (
	ErrSubtotalMismatch = errors.New("subtotal mismatch")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
)

// subtotalEpsilon is the tolerance for comparing the declared subtotal against
// the computed line-item total. Fixed, independent of order size.
var subtotalEpsilon = decimal.NewFromFloat(0.01)

// OrderService handles order intake: consistency validation followed by a
// single document write
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// SubmitOrder validates an order and persists it, returning the
// store-assigned identifier. Validation happens strictly before the write:
// a rejected order causes no store call. An order with no items and a zero
// subtotal is accepted.
func (s *OrderService) SubmitOrder(ctx context.Context, order models.Order) (string, error) {
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return "", ErrInvalidQuantity
		}
	}

	calc := calcSubtotal(order.Items)
	declared := decimal.NewFromFloat(order.Subtotal)
	if calc.Sub(declared).Abs().GreaterThan(subtotalEpsilon) {
		return "", ErrSubtotalMismatch
	}

	// Persist the document verbatim, declared subtotal included
	return s.orderRepo.Create(ctx, order)
}

// ListOrders returns all stored orders
func (s *OrderService) ListOrders(ctx context.Context) ([]models.StoredOrder, error) {
	return s.orderRepo.List(ctx)
}

// calcSubtotal sums price*quantity over the line items in decimal arithmetic,
// so the epsilon comparison is not polluted by float accumulation error
func calcSubtotal(items []models.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}
