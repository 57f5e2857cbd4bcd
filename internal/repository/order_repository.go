package repository

import (
	"context"
	"fmt"

	"github.com/siamstore/backend/internal/models"
	"github.com/siamstore/backend/internal/store"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (string, error)
	List(ctx context.Context) ([]models.StoredOrder, error)
}

// StoreOrderRepository implements OrderRepository over a document store
type StoreOrderRepository struct {
	store store.Store
}

// NewStoreOrderRepository creates an order repository backed by the given store
func NewStoreOrderRepository(s store.Store) *StoreOrderRepository {
	return &StoreOrderRepository{store: s}
}

// Create inserts the order document verbatim, including the client-declared
// subtotal, and returns the store-assigned identifier. The write is a single
// atomic insert; there is no partial state on failure.
func (r *StoreOrderRepository) Create(ctx context.Context, order models.Order) (string, error) {
	return r.store.Insert(ctx, store.CollectionOrder, order)
}

// List returns all stored orders in store-defined order
func (r *StoreOrderRepository) List(ctx context.Context) ([]models.StoredOrder, error) {
	docs, err := r.store.Query(ctx, store.CollectionOrder, nil, 0)
	if err != nil {
		return nil, err
	}

	orders := make([]models.StoredOrder, 0, len(docs))
	for _, doc := range docs {
		var o models.StoredOrder
		if err := decodeDocument(doc, &o); err != nil {
			return nil, fmt.Errorf("decode order document: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}
