package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/siamstore/backend/internal/models"
	"github.com/siamstore/backend/internal/store"
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (string, error)
	List(ctx context.Context, category string) ([]models.StoredProduct, error)
	Any(ctx context.Context) (bool, error)
}

// StoreProductRepository implements ProductRepository over a document store
type StoreProductRepository struct {
	store store.Store
}

// NewStoreProductRepository creates a product repository backed by the given store
func NewStoreProductRepository(s store.Store) *StoreProductRepository {
	return &StoreProductRepository{store: s}
}

// Create inserts a product and returns its store-assigned identifier
func (r *StoreProductRepository) Create(ctx context.Context, product models.Product) (string, error) {
	return r.store.Insert(ctx, store.CollectionProduct, product)
}

// List returns stored products, optionally filtered by exact category match
func (r *StoreProductRepository) List(ctx context.Context, category string) ([]models.StoredProduct, error) {
	filter := store.Filter{}
	if category != "" {
		filter["category"] = category
	}

	docs, err := r.store.Query(ctx, store.CollectionProduct, filter, 0)
	if err != nil {
		return nil, err
	}

	products := make([]models.StoredProduct, 0, len(docs))
	for _, doc := range docs {
		var p models.StoredProduct
		if err := decodeDocument(doc, &p); err != nil {
			return nil, fmt.Errorf("decode product document: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// Any reports whether at least one product exists, using a limit-1 query
func (r *StoreProductRepository) Any(ctx context.Context) (bool, error) {
	docs, err := r.store.Query(ctx, store.CollectionProduct, nil, 1)
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

// decodeDocument converts an untyped store document into a tagged record.
// Documents never travel past this layer.
func decodeDocument(doc store.Document, out interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
